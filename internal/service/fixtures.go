package service

import (
	"time"

	"alpharoot/internal/model"
	"alpharoot/pkg/utils"
)

// Sample catalog standing in for a real market data backend.

func seedIndustries() []model.Industry {
	return []model.Industry{
		{ID: 1, Name: "Information Technology", Code: "IT", Description: "IT and software"},
		{ID: 2, Name: "Biotech", Code: "BIO", Description: "Biotech and pharmaceuticals"},
		{ID: 3, Name: "Finance", Code: "FIN", Description: "Banking and insurance"},
		{ID: 4, Name: "Semiconductors", Code: "SEMI", Description: "Semiconductors and components"},
		{ID: 5, Name: "Automotive", Code: "AUTO", Description: "Automobiles and parts"},
		{ID: 6, Name: "Chemicals", Code: "CHEM", Description: "Chemicals and materials"},
		{ID: 7, Name: "Energy", Code: "ENERGY", Description: "Energy and utilities"},
		{ID: 8, Name: "Telecom", Code: "TELECOM", Description: "Telecom and media"},
	}
}

func seedStocks(industries []model.Industry) []model.Stock {
	byCode := make(map[string]model.Industry, len(industries))
	for _, ind := range industries {
		byCode[ind.Code] = ind
	}

	now := time.Now()
	mk := func(id int64, ticker, name, industryCode string, marketCap, dividendYield, currentPrice float64) model.Stock {
		return model.Stock{
			ID:            id,
			Ticker:        ticker,
			Name:          name,
			MarketCap:     utils.ToPointer(marketCap),
			DividendYield: utils.ToPointer(dividendYield),
			CurrentPrice:  utils.ToPointer(currentPrice),
			Industry:      byCode[industryCode],
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	return []model.Stock{
		mk(1, "005930", "Samsung Electronics", "SEMI", 592_000_000_000_000, 2.1, 71_000),
		mk(2, "000660", "SK Hynix", "SEMI", 89_000_000_000_000, 1.8, 122_000),
		mk(3, "035420", "NAVER", "IT", 31_000_000_000_000, 0.5, 185_000),
		mk(4, "035720", "Kakao", "IT", 19_000_000_000_000, 0.3, 43_000),
		mk(5, "207940", "Samsung Biologics", "BIO", 105_000_000_000_000, 0.0, 875_000),
		mk(6, "005380", "Hyundai Motor", "AUTO", 42_000_000_000_000, 3.2, 197_000),
	}
}

// seedRecommendations builds the demo user's starting recommendation list
// against the first four catalog stocks.
func seedRecommendations(stocks []model.Stock) []*model.Recommendation {
	demoUser := model.User{
		ID:        1,
		Email:     demoEmail,
		Name:      demoUserName,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if len(stocks) < 4 {
		return nil
	}

	day := 24 * time.Hour
	mk := func(id int64, stock model.Stock, typ model.RecommendationType, target, confidence float64, reasoning string, age time.Duration) *model.Recommendation {
		ts := time.Now().Add(-age)
		return &model.Recommendation{
			ID:          id,
			User:        demoUser,
			Stock:       stock,
			Type:        typ,
			TargetPrice: target,
			Confidence:  confidence,
			Reasoning:   reasoning,
			Decision:    model.DecisionPending,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
	}

	return []*model.Recommendation{
		mk(1, stocks[0], model.RecommendationBuy, 75_000, 85,
			"Earnings upside expected from the memory supercycle. HBM demand is surging with AI and datacenter buildouts, and Samsung Electronics is positioned as a leader in that segment.",
			1*day),
		mk(2, stocks[1], model.RecommendationBuy, 140_000, 78,
			"Strong position in the HBM market and the NVIDIA partnership should keep high-margin memory revenue growing alongside AI chip demand.",
			2*day),
		mk(3, stocks[2], model.RecommendationHold, 200_000, 72,
			"Cloud platform growth and the HyperCLOVA X rollout are positives, but ad market uncertainty and rising competition cap near-term upside. Mid-term, new AI-driven revenue lines remain the thesis.",
			3*day),
		mk(4, stocks[3], model.RecommendationHold, 50_000, 65,
			"Fintech and banking arms keep growing, but regulatory risk and the major-shareholder stake sale weigh on the stock. The platform business still supports a stable mid-term earnings base.",
			4*day),
	}
}
