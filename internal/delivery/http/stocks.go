package http

import (
	"net/http"
	"strconv"

	"alpharoot/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStocks(base *echo.Group) {
	v1 := base.Group("/v1/stocks")
	{
		v1.GET("", h.ListStocks)
		v1.GET("/industries", h.ListIndustries)
		v1.GET("/high-dividend", h.HighDividendStocks)
		v1.GET("/large-cap", h.LargeCapStocks)
		v1.GET("/top", h.TopStocksByMarketCap)
		v1.GET("/statistics", h.MarketStatistics)
		v1.GET("/ticker/:ticker", h.GetStockByTicker)
		v1.GET("/:id", h.GetStock)
		v1.GET("/:id/simulation", h.PriceChangeSimulation)
		v1.POST("", h.AddStock)
		v1.PATCH("/:id", h.UpdateStock)
		v1.PUT("/:id/price", h.UpdateStockPrice)
		v1.DELETE("/:id", h.RemoveStock)
	}
}

func (h *HttpAPIHandler) ListStocks(c echo.Context) error {
	if q := c.QueryParam("q"); q != "" {
		return h.okJSON(c, "Search results", h.service.StockService.SearchStocks(q))
	}
	if industry := c.QueryParam("industry"); industry != "" {
		return h.okJSON(c, "Stocks by industry", h.service.StockService.GetStocksByIndustry(industry))
	}
	return h.okJSON(c, "All stocks", h.service.StockService.ListStocks())
}

func (h *HttpAPIHandler) ListIndustries(c echo.Context) error {
	return h.okJSON(c, "All industries", h.service.StockService.ListIndustries())
}

func (h *HttpAPIHandler) HighDividendStocks(c echo.Context) error {
	minYield := 2.0
	if raw := c.QueryParam("min_yield"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("min_yield must be a number"))
		}
		minYield = parsed
	}
	return h.okJSON(c, "High dividend stocks", h.service.StockService.GetHighDividendStocks(minYield))
}

func (h *HttpAPIHandler) LargeCapStocks(c echo.Context) error {
	return h.okJSON(c, "Large cap stocks", h.service.StockService.ListLargeCapStocks())
}

func (h *HttpAPIHandler) TopStocksByMarketCap(c echo.Context) error {
	limit := 5
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("limit must be a positive integer"))
		}
		limit = parsed
	}
	return h.okJSON(c, "Top stocks by market cap", h.service.StockService.GetTopStocksByMarketCap(limit))
}

func (h *HttpAPIHandler) MarketStatistics(c echo.Context) error {
	return h.okJSON(c, "Market statistics", h.service.StockService.GetMarketStatistics())
}

func (h *HttpAPIHandler) GetStock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("id must be an integer"))
	}

	stock := h.service.StockService.GetStockByID(id)
	if stock == nil {
		return h.notFoundJSON(c, "stock not found")
	}
	return h.okJSON(c, "Stock", stock)
}

func (h *HttpAPIHandler) GetStockByTicker(c echo.Context) error {
	stock := h.service.StockService.GetStockByTicker(c.Param("ticker"))
	if stock == nil {
		return h.notFoundJSON(c, "stock not found")
	}
	return h.okJSON(c, "Stock", stock)
}

func (h *HttpAPIHandler) PriceChangeSimulation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("id must be an integer"))
	}

	sim := h.service.StockService.GetPriceChangeSimulation(id)
	if sim == nil {
		return h.notFoundJSON(c, "stock not found or has no price")
	}
	return h.okJSON(c, "Price change simulation", sim)
}

func (h *HttpAPIHandler) AddStock(c echo.Context) error {
	var req dto.AddStockRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	stock, err := h.service.StockService.AddStock(req)
	if err != nil {
		return h.errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Stock added", stock))
}

func (h *HttpAPIHandler) UpdateStock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("id must be an integer"))
	}

	var req dto.UpdateStockRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	stock := h.service.StockService.UpdateStock(id, req)
	if stock == nil {
		return h.notFoundJSON(c, "stock not found")
	}
	return h.okJSON(c, "Stock updated", stock)
}

func (h *HttpAPIHandler) UpdateStockPrice(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("id must be an integer"))
	}

	var req dto.UpdatePriceRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	stock := h.service.StockService.UpdateStockPrice(id, req.Price)
	if stock == nil {
		return h.notFoundJSON(c, "stock not found")
	}
	return h.okJSON(c, "Price updated", stock)
}

func (h *HttpAPIHandler) RemoveStock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("id must be an integer"))
	}

	if !h.service.StockService.RemoveStock(id) {
		return h.notFoundJSON(c, "stock not found")
	}
	return h.okJSON(c, "Stock removed", nil)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
