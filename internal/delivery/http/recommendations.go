package http

import (
	"net/http"
	"strconv"

	"alpharoot/internal/dto"
	"alpharoot/internal/model"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupRecommendations(base *echo.Group) {
	v1 := base.Group("/v1/recommendations")
	{
		v1.GET("", h.ListRecommendations)
		v1.GET("/statistics", h.RecommendationStatistics)
		v1.GET("/diversification", h.DiversificationRecommendations)
		v1.POST("", h.CreateRecommendation)
		v1.POST("/:id/accept", h.AcceptRecommendation)
		v1.POST("/:id/reject", h.RejectRecommendation)
		v1.DELETE("/:id", h.DeleteRecommendation)
	}
}

// currentUser resolves the session user or writes a 401.
func (h *HttpAPIHandler) currentUser(c echo.Context) (*model.User, bool) {
	user := h.service.AuthService.GetCurrentUser()
	if user == nil {
		_ = c.JSON(http.StatusUnauthorized, dto.NewBaseResponse(http.StatusUnauthorized, "login required", nil))
		return nil, false
	}
	return user, true
}

func (h *HttpAPIHandler) ListRecommendations(c echo.Context) error {
	user, ok := h.currentUser(c)
	if !ok {
		return nil
	}
	svc := h.service.RecommendationService

	if q := c.QueryParam("q"); q != "" {
		return h.okJSON(c, "Search results", svc.SearchRecommendations(user.ID, q))
	}

	switch c.QueryParam("status") {
	case "pending":
		return h.okJSON(c, "Pending recommendations", svc.GetPendingRecommendations(user.ID))
	case "accepted":
		return h.okJSON(c, "Accepted recommendations", svc.GetAcceptedRecommendations(user.ID))
	case "rejected":
		return h.okJSON(c, "Rejected recommendations", svc.GetRejectedRecommendations(user.ID))
	}

	if typ := c.QueryParam("type"); typ != "" {
		recType := model.RecommendationType(typ)
		if !recType.Valid() {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("type must be buy, sell or hold"))
		}
		return h.okJSON(c, "Recommendations by type", svc.GetRecommendationsByType(user.ID, recType))
	}

	if raw := c.QueryParam("stock_id"); raw != "" {
		stockID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("stock_id must be an integer"))
		}
		return h.okJSON(c, "Recommendations for stock", svc.GetRecommendationsForStock(user.ID, stockID))
	}

	if raw := c.QueryParam("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("days must be a positive integer"))
		}
		return h.okJSON(c, "Recent recommendations", svc.GetRecentRecommendations(user.ID, days))
	}

	if c.QueryParam("high_confidence") == "true" {
		return h.okJSON(c, "High confidence recommendations", svc.GetHighConfidenceRecommendations(user.ID))
	}

	return h.okJSON(c, "Recommendations", svc.GetCurrentUserRecommendations())
}

func (h *HttpAPIHandler) RecommendationStatistics(c echo.Context) error {
	user, ok := h.currentUser(c)
	if !ok {
		return nil
	}
	return h.okJSON(c, "Recommendation statistics", h.service.RecommendationService.GetRecommendationStatistics(user.ID))
}

func (h *HttpAPIHandler) DiversificationRecommendations(c echo.Context) error {
	user, ok := h.currentUser(c)
	if !ok {
		return nil
	}
	return h.okJSON(c, "Diversification suggestions", h.service.RecommendationService.GetPortfolioDiversificationRecommendations(user.ID))
}

func (h *HttpAPIHandler) CreateRecommendation(c echo.Context) error {
	var req dto.CreateRecommendationRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	rec := h.service.RecommendationService.CreateRecommendation(req)
	if rec == nil {
		// Silent-failure contract: no session, unknown stock, or foreign user id.
		return c.JSON(http.StatusUnprocessableEntity, dto.NewBaseResponse(
			http.StatusUnprocessableEntity, "recommendation could not be created", nil))
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Recommendation created", rec))
}

func (h *HttpAPIHandler) AcceptRecommendation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("id must be an integer"))
	}

	rec := h.service.RecommendationService.AcceptRecommendation(id)
	if rec == nil {
		return h.notFoundJSON(c, "recommendation not found")
	}
	return h.okJSON(c, "Recommendation accepted", rec)
}

func (h *HttpAPIHandler) RejectRecommendation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("id must be an integer"))
	}

	rec := h.service.RecommendationService.RejectRecommendation(id)
	if rec == nil {
		return h.notFoundJSON(c, "recommendation not found")
	}
	return h.okJSON(c, "Recommendation rejected", rec)
}

func (h *HttpAPIHandler) DeleteRecommendation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("id must be an integer"))
	}

	if !h.service.RecommendationService.DeleteRecommendation(id) {
		return h.notFoundJSON(c, "recommendation not found")
	}
	return h.okJSON(c, "Recommendation deleted", nil)
}
