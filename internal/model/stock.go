package model

import (
	"fmt"
	"time"

	"alpharoot/pkg/utils"
)

// CapCategory buckets a stock by market capitalization.
type CapCategory string

const (
	CapLarge   CapCategory = "large"
	CapMid     CapCategory = "mid"
	CapSmall   CapCategory = "small"
	CapUnknown CapCategory = "unknown"
)

const trillion = 1_000_000_000_000

// Stock is a listed equity in the catalog. MarketCap, DividendYield and
// CurrentPrice are optional: nil means the value is not known for this stock.
// Industry is a read-only reference into the catalog's industry list.
type Stock struct {
	ID            int64     `json:"id"`
	Ticker        string    `json:"ticker"`
	Name          string    `json:"name"`
	MarketCap     *float64  `json:"marketCap,omitempty"`
	DividendYield *float64  `json:"dividendYield,omitempty"`
	CurrentPrice  *float64  `json:"currentPrice,omitempty"`
	Industry      Industry  `json:"industry"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpdatePrice sets the current price and bumps UpdatedAt.
func (s *Stock) UpdatePrice(newPrice float64) {
	s.CurrentPrice = &newPrice
	s.UpdatedAt = time.Now()
}

// IsPriceAvailable reports whether the stock has a usable current price.
func (s *Stock) IsPriceAvailable() bool {
	return s.CurrentPrice != nil && *s.CurrentPrice > 0
}

// IsHighDividend reports whether the yield clears the fixed 3.0% bar.
func (s *Stock) IsHighDividend() bool {
	return s.DividendYield != nil && *s.DividendYield >= 3.0
}

// GetCapCategory classifies by market cap: large >= 10T, mid >= 1T, else small.
func (s *Stock) GetCapCategory() CapCategory {
	if s.MarketCap == nil {
		return CapUnknown
	}
	t := *s.MarketCap / trillion
	switch {
	case t >= 10:
		return CapLarge
	case t >= 1:
		return CapMid
	default:
		return CapSmall
	}
}

// FormattedPrice renders the current price for display, "N/A" when absent.
func (s *Stock) FormattedPrice() string {
	if s.CurrentPrice == nil || *s.CurrentPrice == 0 {
		return "N/A"
	}
	return utils.FormatKRW(*s.CurrentPrice)
}

// FormattedMarketCap renders the market cap in trillions, one decimal.
func (s *Stock) FormattedMarketCap() string {
	if s.MarketCap == nil || *s.MarketCap == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1fT KRW", *s.MarketCap/trillion)
}

// FormattedDividendYield renders the yield with one decimal.
func (s *Stock) FormattedDividendYield() string {
	if s.DividendYield == nil || *s.DividendYield == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *s.DividendYield)
}

// DisplayInfo is the compact listing form used by catalog views.
type DisplayInfo struct {
	Name     string `json:"name"`
	Ticker   string `json:"ticker"`
	Industry string `json:"industry"`
}

func (s *Stock) GetDisplayInfo() DisplayInfo {
	return DisplayInfo{
		Name:     s.Name,
		Ticker:   s.Ticker,
		Industry: s.Industry.Name,
	}
}
