package dto

type AddStockRequest struct {
	Ticker        string   `json:"ticker" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	IndustryCode  string   `json:"industryCode" validate:"required"`
	MarketCap     *float64 `json:"marketCap,omitempty"`
	DividendYield *float64 `json:"dividendYield,omitempty"`
	CurrentPrice  *float64 `json:"currentPrice,omitempty"`
}

// UpdateStockRequest patches any subset of the mutable numeric fields.
type UpdateStockRequest struct {
	MarketCap     *float64 `json:"marketCap,omitempty"`
	DividendYield *float64 `json:"dividendYield,omitempty"`
	CurrentPrice  *float64 `json:"currentPrice,omitempty"`
}

type UpdatePriceRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type MarketStatistics struct {
	TotalStocks          int            `json:"totalStocks"`
	TotalMarketCap       float64        `json:"totalMarketCap"`
	AverageDividendYield float64        `json:"averageDividendYield"`
	IndustryDistribution map[string]int `json:"industryDistribution"`
}

type PriceChangeSimulation struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}
