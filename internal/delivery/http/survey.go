package http

import (
	"net/http"

	"alpharoot/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSurvey(base *echo.Group) {
	v1 := base.Group("/v1/survey")
	{
		v1.POST("", h.SubmitSurvey)
		v1.GET("", h.GetSurvey)
	}
}

func (h *HttpAPIHandler) SubmitSurvey(c echo.Context) error {
	var req dto.SurveyRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	resp, err := h.service.SurveyService.Submit(req)
	if err != nil {
		return h.errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Survey submitted", resp))
}

func (h *HttpAPIHandler) GetSurvey(c echo.Context) error {
	resp, err := h.service.SurveyService.Get()
	if err != nil {
		return h.errorJSON(c, err)
	}
	if resp == nil {
		return h.notFoundJSON(c, "no survey submitted yet")
	}
	return h.okJSON(c, "Survey", resp)
}
