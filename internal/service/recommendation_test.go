package service

import (
	"context"
	"testing"

	"alpharoot/internal/dto"
	"alpharoot/internal/model"
	"alpharoot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecommendationService(t *testing.T) (*RecommendationService, *AuthService, *StockService) {
	t.Helper()
	stocks := testStockService(t)
	auth := testAuthService(t)
	return NewRecommendationService(logger.Nop(), stocks, auth), auth, stocks
}

func loginDemo(t *testing.T, auth *AuthService) *model.User {
	t.Helper()
	user, err := auth.Login(context.Background(), "test@example.com", "password")
	require.NoError(t, err)
	return user
}

func TestRecommendationService_SeededForDemoUser(t *testing.T) {
	svc, _, _ := testRecommendationService(t)

	recs := svc.GetRecommendationsForUser(1)
	require.Len(t, recs, 4)
	for _, rec := range recs {
		assert.True(t, rec.IsPending())
		assert.Equal(t, int64(1), rec.User.ID)
	}

	assert.Empty(t, svc.GetRecommendationsForUser(2))
}

func TestRecommendationService_CurrentUserRecommendations(t *testing.T) {
	svc, auth, _ := testRecommendationService(t)

	assert.Empty(t, svc.GetCurrentUserRecommendations())

	loginDemo(t, auth)
	assert.Len(t, svc.GetCurrentUserRecommendations(), 4)
}

func TestRecommendationService_StatusFilters(t *testing.T) {
	svc, _, _ := testRecommendationService(t)

	require.NotNil(t, svc.AcceptRecommendation(1))
	require.NotNil(t, svc.RejectRecommendation(2))

	assert.Len(t, svc.GetPendingRecommendations(1), 2)
	accepted := svc.GetAcceptedRecommendations(1)
	require.Len(t, accepted, 1)
	assert.Equal(t, int64(1), accepted[0].ID)
	rejected := svc.GetRejectedRecommendations(1)
	require.Len(t, rejected, 1)
	assert.Equal(t, int64(2), rejected[0].ID)
}

func TestRecommendationService_TypeAndConfidenceFilters(t *testing.T) {
	svc, _, _ := testRecommendationService(t)

	assert.Len(t, svc.GetRecommendationsByType(1, model.RecommendationBuy), 2)
	assert.Len(t, svc.GetRecommendationsByType(1, model.RecommendationHold), 2)
	assert.Empty(t, svc.GetRecommendationsByType(1, model.RecommendationSell))

	high := svc.GetHighConfidenceRecommendations(1)
	require.Len(t, high, 1)
	assert.Equal(t, 85.0, high[0].Confidence)

	forStock := svc.GetRecommendationsForStock(1, 2)
	require.Len(t, forStock, 1)
	assert.Equal(t, "000660", forStock[0].Stock.Ticker)

	assert.Len(t, svc.GetRecentRecommendations(1, 7), 4)
	assert.Len(t, svc.GetRecentRecommendations(1, 2), 1)
}

func TestRecommendationService_AcceptThenRejectLastWriteWins(t *testing.T) {
	svc, _, _ := testRecommendationService(t)

	accepted := svc.AcceptRecommendation(1)
	require.NotNil(t, accepted)
	assert.Equal(t, model.DecisionAccepted, accepted.Decision)
	firstUpdate := accepted.UpdatedAt

	rejected := svc.RejectRecommendation(1)
	require.NotNil(t, rejected)
	assert.Equal(t, model.DecisionRejected, rejected.Decision)
	assert.True(t, rejected.UpdatedAt.After(firstUpdate))

	// Accept and reject hand back the same stored record.
	assert.Same(t, accepted, rejected)

	assert.Nil(t, svc.AcceptRecommendation(999))
	assert.Nil(t, svc.RejectRecommendation(999))
}

func TestRecommendationService_CreateRecommendation(t *testing.T) {
	svc, auth, _ := testRecommendationService(t)

	req := dto.CreateRecommendationRequest{
		UserID:      1,
		StockID:     5,
		Type:        model.RecommendationBuy,
		TargetPrice: 950_000,
		Confidence:  75,
		Reasoning:   "pipeline expansion",
	}

	// No session yet: silent failure, list unchanged.
	assert.Nil(t, svc.CreateRecommendation(req))
	assert.Len(t, svc.GetRecommendationsForUser(1), 4)

	user := loginDemo(t, auth)

	// Foreign user id: silent failure, list unchanged.
	foreign := req
	foreign.UserID = user.ID + 1
	assert.Nil(t, svc.CreateRecommendation(foreign))
	assert.Len(t, svc.GetRecommendationsForUser(1), 4)

	// Unknown stock: silent failure.
	unknownStock := req
	unknownStock.StockID = 999
	assert.Nil(t, svc.CreateRecommendation(unknownStock))

	rec := svc.CreateRecommendation(req)
	require.NotNil(t, rec)
	assert.Equal(t, "207940", rec.Stock.Ticker)
	assert.True(t, rec.IsPending())
	assert.Len(t, svc.GetRecommendationsForUser(1), 5)
}

func TestRecommendationService_DeleteRecommendation(t *testing.T) {
	svc, _, _ := testRecommendationService(t)

	assert.True(t, svc.DeleteRecommendation(3))
	assert.Len(t, svc.GetRecommendationsForUser(1), 3)
	assert.False(t, svc.DeleteRecommendation(3))
}

func TestRecommendationService_Statistics(t *testing.T) {
	svc, _, _ := testRecommendationService(t)

	require.NotNil(t, svc.AcceptRecommendation(1))
	require.NotNil(t, svc.RejectRecommendation(4))

	stats := svc.GetRecommendationStatistics(1)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Accepted)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 2, stats.ByType["Buy"])
	assert.Equal(t, 2, stats.ByType["Hold"])
	assert.InDelta(t, (85+78+72+65)/4.0, stats.AverageConfidence, 1e-9)
	assert.Equal(t, 1, stats.HighConfidenceCount)

	empty := svc.GetRecommendationStatistics(42)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.AverageConfidence)
}

func TestRecommendationService_Search(t *testing.T) {
	svc, _, _ := testRecommendationService(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "by stock name", query: "naver", want: 1},
		{name: "by ticker", query: "005930", want: 1},
		{name: "by reasoning", query: "hbm", want: 2},
		{name: "by type label", query: "hold", want: 2},
		{name: "no match", query: "zzz", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, svc.SearchRecommendations(1, tt.query), tt.want)
		})
	}
}

func TestRecommendationService_Diversification(t *testing.T) {
	svc, auth, _ := testRecommendationService(t)

	// Logged out: empty batch, empty reasoning.
	out := svc.GetPortfolioDiversificationRecommendations(1)
	assert.Empty(t, out.Recommendations)
	assert.Empty(t, out.Reasoning)

	loginDemo(t, auth)

	// Accept the Samsung Electronics rec; SEMI becomes covered.
	require.NotNil(t, svc.AcceptRecommendation(1))

	out = svc.GetPortfolioDiversificationRecommendations(1)
	require.Len(t, out.Recommendations, 2)
	assert.NotEmpty(t, out.Reasoning)
	for _, rec := range out.Recommendations {
		assert.NotEqual(t, "SEMI", rec.Stock.Industry.Code)
		assert.Equal(t, model.RecommendationBuy, rec.Type)
		assert.Equal(t, 70.0, rec.Confidence)
		require.NotNil(t, rec.Stock.CurrentPrice)
		assert.InDelta(t, *rec.Stock.CurrentPrice*1.1, rec.TargetPrice, 1e-9)
	}

	// The batch is transient; nothing was stored.
	assert.Len(t, svc.GetRecommendationsForUser(1), 4)
}
