package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"alpharoot/internal/dto"
	"alpharoot/internal/model"
	"alpharoot/pkg/logger"
)

// RecommendationService owns the recommendation list. It resolves stocks
// through the StockService and attributes actions to the AuthService's
// current user.
type RecommendationService struct {
	log    *logger.Logger
	stocks *StockService
	auth   *AuthService
	ids    idAllocator

	mu              sync.RWMutex
	recommendations []*model.Recommendation
}

func NewRecommendationService(log *logger.Logger, stocks *StockService, auth *AuthService) *RecommendationService {
	return &RecommendationService{
		log:             log,
		stocks:          stocks,
		auth:            auth,
		recommendations: seedRecommendations(stocks.ListStocks()),
	}
}

// GetRecommendationsForUser returns copies of the user's recommendations.
func (s *RecommendationService) GetRecommendationsForUser(userID int64) []model.Recommendation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Recommendation
	for _, rec := range s.recommendations {
		if rec.User.ID == userID {
			out = append(out, *rec)
		}
	}
	return out
}

// GetCurrentUserRecommendations is the session-scoped convenience wrapper;
// empty when nobody is logged in.
func (s *RecommendationService) GetCurrentUserRecommendations() []model.Recommendation {
	user := s.auth.GetCurrentUser()
	if user == nil {
		return nil
	}
	return s.GetRecommendationsForUser(user.ID)
}

func (s *RecommendationService) GetPendingRecommendations(userID int64) []model.Recommendation {
	return s.filterForUser(userID, func(r model.Recommendation) bool { return r.IsPending() })
}

func (s *RecommendationService) GetAcceptedRecommendations(userID int64) []model.Recommendation {
	return s.filterForUser(userID, func(r model.Recommendation) bool { return r.Decision == model.DecisionAccepted })
}

func (s *RecommendationService) GetRejectedRecommendations(userID int64) []model.Recommendation {
	return s.filterForUser(userID, func(r model.Recommendation) bool { return r.Decision == model.DecisionRejected })
}

func (s *RecommendationService) GetRecommendationsByType(userID int64, typ model.RecommendationType) []model.Recommendation {
	return s.filterForUser(userID, func(r model.Recommendation) bool { return r.Type == typ })
}

func (s *RecommendationService) GetHighConfidenceRecommendations(userID int64) []model.Recommendation {
	return s.filterForUser(userID, func(r model.Recommendation) bool { return r.IsHighConfidence() })
}

func (s *RecommendationService) GetRecommendationsForStock(userID, stockID int64) []model.Recommendation {
	return s.filterForUser(userID, func(r model.Recommendation) bool { return r.Stock.ID == stockID })
}

// GetRecentRecommendations returns the user's recommendations created within
// the last days days.
func (s *RecommendationService) GetRecentRecommendations(userID int64, days int) []model.Recommendation {
	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	return s.filterForUser(userID, func(r model.Recommendation) bool {
		return !r.CreatedAt.Before(cutoff)
	})
}

// AcceptRecommendation marks the recommendation accepted in place and
// returns it, or nil for an unknown id.
func (s *RecommendationService) AcceptRecommendation(id int64) *model.Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.findLocked(id); rec != nil {
		rec.Accept()
		return rec
	}
	return nil
}

// RejectRecommendation is the symmetric terminal transition.
func (s *RecommendationService) RejectRecommendation(id int64) *model.Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.findLocked(id); rec != nil {
		rec.Reject()
		return rec
	}
	return nil
}

// CreateRecommendation appends a new pending recommendation. It fails
// silently (nil) when nobody is logged in, the stock is unknown, or userID
// is not the session user's id.
func (s *RecommendationService) CreateRecommendation(req dto.CreateRecommendationRequest) *model.Recommendation {
	user := s.auth.GetCurrentUser()
	stock := s.stocks.GetStockByID(req.StockID)
	if user == nil || stock == nil || user.ID != req.UserID {
		return nil
	}

	now := time.Now()
	rec := &model.Recommendation{
		ID:          s.ids.Next(),
		User:        *user,
		Stock:       *stock,
		Type:        req.Type,
		TargetPrice: req.TargetPrice,
		Confidence:  req.Confidence,
		Reasoning:   req.Reasoning,
		Decision:    model.DecisionPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.recommendations = append(s.recommendations, rec)
	s.mu.Unlock()

	s.log.Info("recommendation created",
		logger.Int64Field("id", rec.ID),
		logger.StringField("ticker", rec.Stock.Ticker),
		logger.StringField("type", string(rec.Type)),
	)
	return rec
}

// DeleteRecommendation removes by id; true when something was removed.
func (s *RecommendationService) DeleteRecommendation(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.recommendations {
		if rec.ID == id {
			s.recommendations = append(s.recommendations[:i], s.recommendations[i+1:]...)
			return true
		}
	}
	return false
}

// GetRecommendationStatistics aggregates the user's recommendation list.
func (s *RecommendationService) GetRecommendationStatistics(userID int64) dto.RecommendationStatistics {
	recs := s.GetRecommendationsForUser(userID)

	stats := dto.RecommendationStatistics{
		Total:  len(recs),
		ByType: make(map[string]int),
	}

	confidenceSum := 0.0
	for _, rec := range recs {
		switch rec.Decision {
		case model.DecisionPending:
			stats.Pending++
		case model.DecisionAccepted:
			stats.Accepted++
		case model.DecisionRejected:
			stats.Rejected++
		}
		stats.ByType[rec.Type.Label()]++
		confidenceSum += rec.Confidence
		if rec.IsHighConfidence() {
			stats.HighConfidenceCount++
		}
	}
	if stats.Total > 0 {
		stats.AverageConfidence = confidenceSum / float64(stats.Total)
	}
	return stats
}

// SearchRecommendations matches query case-insensitively against stock
// name, ticker, reasoning and the type label.
func (s *RecommendationService) SearchRecommendations(userID int64, query string) []model.Recommendation {
	q := strings.ToLower(query)
	return s.filterForUser(userID, func(r model.Recommendation) bool {
		return strings.Contains(strings.ToLower(r.Stock.Name), q) ||
			strings.Contains(strings.ToLower(r.Stock.Ticker), q) ||
			strings.Contains(strings.ToLower(r.Reasoning), q) ||
			strings.Contains(strings.ToLower(r.Type.Label()), q)
	})
}

// GetPortfolioDiversificationRecommendations synthesizes up to two buy
// suggestions from industries absent among the user's accepted
// recommendations. The batch is transient; nothing is stored.
func (s *RecommendationService) GetPortfolioDiversificationRecommendations(userID int64) dto.DiversificationResult {
	user := s.auth.GetCurrentUser()
	if user == nil {
		return dto.DiversificationResult{}
	}

	covered := make(map[string]struct{})
	for _, rec := range s.GetAcceptedRecommendations(userID) {
		covered[rec.Stock.Industry.Code] = struct{}{}
	}

	var picks []model.Recommendation
	for _, stock := range s.stocks.ListStocks() {
		if _, ok := covered[stock.Industry.Code]; ok {
			continue
		}
		if len(picks) == 2 {
			break
		}

		price := 0.0
		if stock.CurrentPrice != nil {
			price = *stock.CurrentPrice
		}
		now := time.Now()
		picks = append(picks, model.Recommendation{
			ID:          s.ids.Next(),
			User:        *user,
			Stock:       stock,
			Type:        model.RecommendationBuy,
			TargetPrice: price * 1.1,
			Confidence:  70,
			Reasoning:   fmt.Sprintf("Diversification pick for the %s sector.", stock.Industry.Name),
			Decision:    model.DecisionPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return dto.DiversificationResult{
		Recommendations: picks,
		Reasoning:       "Suggestions to lower the portfolio's industry concentration and spread risk.",
	}
}

// filterForUser applies keep over the user's recommendations.
func (s *RecommendationService) filterForUser(userID int64, keep func(model.Recommendation) bool) []model.Recommendation {
	var out []model.Recommendation
	for _, rec := range s.GetRecommendationsForUser(userID) {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// findLocked returns the stored record with the given id. Callers hold mu.
func (s *RecommendationService) findLocked(id int64) *model.Recommendation {
	for _, rec := range s.recommendations {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}
