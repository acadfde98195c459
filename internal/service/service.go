package service

import (
	"math/rand"
	"sync"
	"time"

	"alpharoot/config"
	"alpharoot/pkg/cache"
	"alpharoot/pkg/localstore"
	"alpharoot/pkg/logger"
)

type Service struct {
	StockService          *StockService
	AuthService           *AuthService
	RecommendationService *RecommendationService
	SurveyService         *SurveyService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	store *localstore.Store,
	rng *rand.Rand,
) *Service {
	stockService := NewStockService(cfg, log, inmemoryCache, rng)
	authService := NewAuthService(cfg, log, store)
	recommendationService := NewRecommendationService(log, stockService, authService)
	surveyService := NewSurveyService(log, store)

	return &Service{
		StockService:          stockService,
		AuthService:           authService,
		RecommendationService: recommendationService,
		SurveyService:         surveyService,
	}
}

// idAllocator issues record ids from the wall clock, like the fixtures'
// creation scheme. Ids are bumped past the previous one when two
// allocations land on the same millisecond, so they stay unique.
type idAllocator struct {
	mu   sync.Mutex
	last int64
}

func (a *idAllocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= a.last {
		id = a.last + 1
	}
	a.last = id
	return id
}
