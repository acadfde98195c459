package service

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"alpharoot/config"
	"alpharoot/internal/dto"
	"alpharoot/internal/model"
	"alpharoot/pkg/apperrors"
	"alpharoot/pkg/cache"
	"alpharoot/pkg/logger"
)

const marketStatisticsCacheKey = "stock:market_statistics"

// StockService is the sole owner of the Industry and Stock collections.
// All returned slices are copies; callers cannot reach the backing arrays.
type StockService struct {
	cfg   *config.Config
	log   *logger.Logger
	cache cache.Cache
	ids   idAllocator

	rngMu sync.Mutex
	rng   *rand.Rand

	mu         sync.RWMutex
	industries []model.Industry
	stocks     []model.Stock
}

// NewStockService builds a catalog pre-loaded with the sample fixtures.
// rng drives the price-change simulation; tests pass a seeded source.
func NewStockService(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache, rng *rand.Rand) *StockService {
	industries := seedIndustries()
	return &StockService{
		cfg:        cfg,
		log:        log,
		cache:      inmemoryCache,
		rng:        rng,
		industries: industries,
		stocks:     seedStocks(industries),
	}
}

func (s *StockService) ListIndustries() []model.Industry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Industry, len(s.industries))
	copy(out, s.industries)
	return out
}

func (s *StockService) ListStocks() []model.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Stock, len(s.stocks))
	copy(out, s.stocks)
	return out
}

// GetStockByID returns the stock with the given id, or nil.
func (s *StockService) GetStockByID(id int64) *model.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findByIDLocked(id)
}

// GetStockByTicker returns the stock with the exact (case-sensitive) ticker, or nil.
func (s *StockService) GetStockByTicker(ticker string) *model.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.stocks {
		if s.stocks[i].Ticker == ticker {
			st := s.stocks[i]
			return &st
		}
	}
	return nil
}

func (s *StockService) GetStocksByIndustry(industryCode string) []model.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Stock
	for _, st := range s.stocks {
		if st.Industry.Code == industryCode {
			out = append(out, st)
		}
	}
	return out
}

// GetHighDividendStocks filters to stocks passing both the entity-level
// high-dividend bar (>= 3.0) and the caller's floor. The double condition
// is inherited behavior: minYield below 3.0 does not widen the result.
func (s *StockService) GetHighDividendStocks(minYield float64) []model.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Stock
	for i := range s.stocks {
		st := s.stocks[i]
		yield := 0.0
		if st.DividendYield != nil {
			yield = *st.DividendYield
		}
		if st.IsHighDividend() && yield >= minYield {
			out = append(out, st)
		}
	}
	return out
}

// ListLargeCapStocks returns stocks in the large market-cap bucket.
func (s *StockService) ListLargeCapStocks() []model.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Stock
	for i := range s.stocks {
		if s.stocks[i].GetCapCategory() == model.CapLarge {
			out = append(out, s.stocks[i])
		}
	}
	return out
}

// SearchStocks matches query case-insensitively against name, ticker and
// industry name.
func (s *StockService) SearchStocks(query string) []model.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []model.Stock
	for _, st := range s.stocks {
		if strings.Contains(strings.ToLower(st.Name), q) ||
			strings.Contains(strings.ToLower(st.Ticker), q) ||
			strings.Contains(strings.ToLower(st.Industry.Name), q) {
			out = append(out, st)
		}
	}
	return out
}

// UpdateStockPrice sets a new current price, or returns nil for an unknown id.
func (s *StockService) UpdateStockPrice(id int64, newPrice float64) *model.Stock {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stocks {
		if s.stocks[i].ID == id {
			s.stocks[i].UpdatePrice(newPrice)
			s.invalidateStatistics()
			st := s.stocks[i]
			return &st
		}
	}
	return nil
}

// UpdateStock patches any subset of market cap, dividend yield and price.
// Price changes go through the same path as UpdateStockPrice; UpdatedAt is
// always bumped.
func (s *StockService) UpdateStock(id int64, updates dto.UpdateStockRequest) *model.Stock {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stocks {
		if s.stocks[i].ID != id {
			continue
		}
		if updates.MarketCap != nil {
			s.stocks[i].MarketCap = updates.MarketCap
		}
		if updates.DividendYield != nil {
			s.stocks[i].DividendYield = updates.DividendYield
		}
		if updates.CurrentPrice != nil {
			s.stocks[i].UpdatePrice(*updates.CurrentPrice)
		}
		s.stocks[i].UpdatedAt = time.Now()
		s.invalidateStatistics()
		st := s.stocks[i]
		return &st
	}
	return nil
}

// AddStock appends a new stock after checking the industry exists and the
// ticker is unique.
func (s *StockService) AddStock(req dto.AddStockRequest) (*model.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var industry *model.Industry
	for i := range s.industries {
		if s.industries[i].Code == req.IndustryCode {
			industry = &s.industries[i]
			break
		}
	}
	if industry == nil {
		return nil, apperrors.NewValidationError("industryCode", fmt.Sprintf("unknown industry code %q", req.IndustryCode))
	}

	for i := range s.stocks {
		if s.stocks[i].Ticker == req.Ticker {
			return nil, apperrors.NewConflictError(fmt.Sprintf("ticker %q already exists", req.Ticker))
		}
	}

	now := time.Now()
	stock := model.Stock{
		ID:            s.ids.Next(),
		Ticker:        req.Ticker,
		Name:          req.Name,
		MarketCap:     req.MarketCap,
		DividendYield: req.DividendYield,
		CurrentPrice:  req.CurrentPrice,
		Industry:      *industry,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.stocks = append(s.stocks, stock)
	s.invalidateStatistics()

	s.log.Info("stock added",
		logger.StringField("ticker", stock.Ticker),
		logger.Int64Field("id", stock.ID),
	)
	return &stock, nil
}

// RemoveStock deletes by id. Recommendations referencing the removed stock
// keep their snapshot of it; nothing cascades.
func (s *StockService) RemoveStock(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stocks {
		if s.stocks[i].ID == id {
			s.stocks = append(s.stocks[:i], s.stocks[i+1:]...)
			s.invalidateStatistics()
			return true
		}
	}
	return false
}

// GetMarketStatistics aggregates over the whole catalog. Missing market caps
// count as 0 in the total; the average yield only covers stocks that define
// one. Results are memoized for a short TTL.
func (s *StockService) GetMarketStatistics() dto.MarketStatistics {
	if stats, ok := cache.GetTyped[dto.MarketStatistics](s.cache, marketStatisticsCacheKey); ok {
		return stats
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := dto.MarketStatistics{
		TotalStocks:          len(s.stocks),
		IndustryDistribution: make(map[string]int),
	}

	yieldSum := 0.0
	yieldCount := 0
	for _, st := range s.stocks {
		if st.MarketCap != nil {
			stats.TotalMarketCap += *st.MarketCap
		}
		if st.DividendYield != nil {
			yieldSum += *st.DividendYield
			yieldCount++
		}
		stats.IndustryDistribution[st.Industry.Name]++
	}
	if yieldCount > 0 {
		stats.AverageDividendYield = yieldSum / float64(yieldCount)
	}

	s.cache.Set(marketStatisticsCacheKey, stats, s.cfg.Cache.StatisticsTTL)
	return stats
}

// GetTopStocksByMarketCap returns up to limit stocks with a defined market
// cap, largest first.
func (s *StockService) GetTopStocksByMarketCap(limit int) []model.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Stock
	for _, st := range s.stocks {
		if st.MarketCap != nil {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return *out[i].MarketCap > *out[j].MarketCap
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GetPriceChangeSimulation fabricates a random move in [-5%, +5%] for
// display flavor. It is non-deterministic by design and not derived from
// any price history. Returns nil when the stock is unknown or has no price.
func (s *StockService) GetPriceChangeSimulation(id int64) *dto.PriceChangeSimulation {
	s.mu.RLock()
	stock := s.findByIDLocked(id)
	s.mu.RUnlock()

	if stock == nil || !stock.IsPriceAvailable() {
		return nil
	}

	s.rngMu.Lock()
	changePercent := (s.rng.Float64() - 0.5) * 10
	s.rngMu.Unlock()

	price := *stock.CurrentPrice
	return &dto.PriceChangeSimulation{
		Price:         price,
		Change:        price * changePercent / 100,
		ChangePercent: changePercent,
	}
}

// findByIDLocked returns a copy of the stock with the given id. Callers hold mu.
func (s *StockService) findByIDLocked(id int64) *model.Stock {
	for i := range s.stocks {
		if s.stocks[i].ID == id {
			st := s.stocks[i]
			return &st
		}
	}
	return nil
}

// invalidateStatistics drops the memoized aggregate. Callers hold mu.
func (s *StockService) invalidateStatistics() {
	s.cache.Delete(marketStatisticsCacheKey)
}
