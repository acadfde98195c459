package http

import (
	"context"
	"errors"
	"net/http"

	"alpharoot/internal/dto"
	"alpharoot/internal/service"
	"alpharoot/pkg/apperrors"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api")
	h.SetupAuth(base)
	h.SetupStocks(base)
	h.SetupRecommendations(base)
	h.SetupSurvey(base)
}

// bind decodes and validates the request body into req.
func (h *HttpAPIHandler) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return h.validator.Struct(req)
}

// errorJSON maps the error taxonomy onto HTTP statuses.
func (h *HttpAPIHandler) errorJSON(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		code = http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		code = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
	case apperrors.IsConflict(err):
		code = http.StatusConflict
	}
	return c.JSON(code, dto.NewBaseResponse(code, err.Error(), nil))
}

func (h *HttpAPIHandler) notFoundJSON(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, message, nil))
}

func (h *HttpAPIHandler) okJSON(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse(message, data))
}
