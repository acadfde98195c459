package dto

import "alpharoot/internal/model"

type CreateRecommendationRequest struct {
	UserID      int64                    `json:"userId" validate:"required"`
	StockID     int64                    `json:"stockId" validate:"required"`
	Type        model.RecommendationType `json:"type" validate:"required,oneof=buy sell hold"`
	TargetPrice float64                  `json:"targetPrice" validate:"required,gt=0"`
	Confidence  float64                  `json:"confidence" validate:"gte=0,lte=100"`
	Reasoning   string                   `json:"reasoning" validate:"required"`
}

type RecommendationStatistics struct {
	Total               int            `json:"total"`
	Pending             int            `json:"pending"`
	Accepted            int            `json:"accepted"`
	Rejected            int            `json:"rejected"`
	ByType              map[string]int `json:"byType"`
	AverageConfidence   float64        `json:"averageConfidence"`
	HighConfidenceCount int            `json:"highConfidenceCount"`
}

// DiversificationResult is a transient suggestion batch; the contained
// recommendations are never appended to the backing store.
type DiversificationResult struct {
	Recommendations []model.Recommendation `json:"recommendations"`
	Reasoning       string                 `json:"reasoning"`
}
