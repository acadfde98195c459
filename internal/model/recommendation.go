package model

import (
	"encoding/json"
	"fmt"
	"time"

	"alpharoot/pkg/utils"
)

// RecommendationType is the suggested action for a stock.
type RecommendationType string

const (
	RecommendationBuy  RecommendationType = "buy"
	RecommendationSell RecommendationType = "sell"
	RecommendationHold RecommendationType = "hold"
)

// Valid reports whether t is one of buy/sell/hold.
func (t RecommendationType) Valid() bool {
	switch t {
	case RecommendationBuy, RecommendationSell, RecommendationHold:
		return true
	}
	return false
}

// Label is the human-readable action name.
func (t RecommendationType) Label() string {
	switch t {
	case RecommendationBuy:
		return "Buy"
	case RecommendationSell:
		return "Sell"
	case RecommendationHold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// Color is the accent color views attach to the action.
func (t RecommendationType) Color() string {
	switch t {
	case RecommendationBuy:
		return "#4CAF50"
	case RecommendationSell:
		return "#f44336"
	case RecommendationHold:
		return "#FF9800"
	default:
		return "#757575"
	}
}

// ConfidenceLevel tiers a confidence score.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// Decision is the user's verdict on a recommendation. Pending means no
// verdict yet; Accepted and Rejected are terminal.
type Decision int

const (
	DecisionPending Decision = iota
	DecisionAccepted
	DecisionRejected
)

func (d Decision) String() string {
	switch d {
	case DecisionAccepted:
		return "accepted"
	case DecisionRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Recommendation is one buy/sell/hold suggestion for a user. User and Stock
// are read-only references into their owning services' data; they are not
// cleared when the referenced record is removed.
type Recommendation struct {
	ID          int64
	User        User
	Stock       Stock
	Type        RecommendationType
	TargetPrice float64
	Confidence  float64
	Reasoning   string
	Decision    Decision
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Accept marks the recommendation accepted and bumps UpdatedAt.
func (r *Recommendation) Accept() {
	r.Decision = DecisionAccepted
	r.UpdatedAt = time.Now()
}

// Reject marks the recommendation rejected and bumps UpdatedAt.
func (r *Recommendation) Reject() {
	r.Decision = DecisionRejected
	r.UpdatedAt = time.Now()
}

// IsPending reports whether the user has not decided yet.
func (r *Recommendation) IsPending() bool {
	return r.Decision == DecisionPending
}

// IsHighConfidence reports whether confidence is at least 80.
func (r *Recommendation) IsHighConfidence() bool {
	return r.Confidence >= 80
}

// GetConfidenceLevel tiers the score: high >= 80, medium >= 60, else low.
func (r *Recommendation) GetConfidenceLevel() ConfidenceLevel {
	switch {
	case r.Confidence >= 80:
		return ConfidenceHigh
	case r.Confidence >= 60:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ExpectedReturn is the percentage gap between target and current price,
// 0 when the stock has no current price.
func (r *Recommendation) ExpectedReturn() float64 {
	if r.Stock.CurrentPrice == nil || *r.Stock.CurrentPrice == 0 {
		return 0
	}
	return (r.TargetPrice - *r.Stock.CurrentPrice) / *r.Stock.CurrentPrice * 100
}

// FormattedExpectedReturn renders the expected return with a sign.
func (r *Recommendation) FormattedExpectedReturn() string {
	return utils.FormatPercentage(r.ExpectedReturn())
}

// FormattedTargetPrice renders the target price for display.
func (r *Recommendation) FormattedTargetPrice() string {
	return utils.FormatKRW(r.TargetPrice)
}

// IsRecent reports whether the recommendation is at most 7 days old.
func (r *Recommendation) IsRecent() bool {
	return time.Since(r.CreatedAt) <= 7*24*time.Hour
}

// Summary is a one-line description for list views.
func (r *Recommendation) Summary() string {
	return fmt.Sprintf("%s %s recommendation (expected return: %s)",
		r.Stock.Name, r.Type.Label(), r.FormattedExpectedReturn())
}

// recommendationJSON is the wire form. The decision travels as the legacy
// tri-state isAccepted field: absent = pending, true = accepted, false = rejected.
type recommendationJSON struct {
	ID          int64              `json:"id"`
	User        User               `json:"user"`
	Stock       Stock              `json:"stock"`
	Type        RecommendationType `json:"type"`
	TargetPrice float64            `json:"targetPrice"`
	Confidence  float64            `json:"confidence"`
	Reasoning   string             `json:"reasoning"`
	IsAccepted  *bool              `json:"isAccepted,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func (r Recommendation) MarshalJSON() ([]byte, error) {
	out := recommendationJSON{
		ID:          r.ID,
		User:        r.User,
		Stock:       r.Stock,
		Type:        r.Type,
		TargetPrice: r.TargetPrice,
		Confidence:  r.Confidence,
		Reasoning:   r.Reasoning,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	switch r.Decision {
	case DecisionAccepted:
		out.IsAccepted = utils.ToPointer(true)
	case DecisionRejected:
		out.IsAccepted = utils.ToPointer(false)
	}
	return json.Marshal(out)
}

func (r *Recommendation) UnmarshalJSON(data []byte) error {
	var in recommendationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.ID = in.ID
	r.User = in.User
	r.Stock = in.Stock
	r.Type = in.Type
	r.TargetPrice = in.TargetPrice
	r.Confidence = in.Confidence
	r.Reasoning = in.Reasoning
	r.CreatedAt = in.CreatedAt
	r.UpdatedAt = in.UpdatedAt
	switch {
	case in.IsAccepted == nil:
		r.Decision = DecisionPending
	case *in.IsAccepted:
		r.Decision = DecisionAccepted
	default:
		r.Decision = DecisionRejected
	}
	return nil
}
