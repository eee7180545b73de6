package agents

import (
	"context"
	"math"

	"github.com/arvind/rfp-responder/internal/pricing"
	"github.com/arvind/rfp-responder/internal/types"
)

// defaultServices are always included in a tender quote.
var defaultServices = []string{"Documentation", "Delivery"}

// defaultTargetMargins are the margin percentages behind the four pricing
// scenarios.
var defaultTargetMargins = types.TargetMargins{
	Low:     8,  // aggressive
	Medium:  15, // recommended
	High:    22, // premium
	Optimal: 18,
}

// PricingInput carries the selected product and tender quantities into the
// pricing agent.
type PricingInput struct {
	TenderID        string                      `json:"tender_id" validate:"required"`
	SelectedProduct types.ProductRecommendation `json:"selected_product"`
	Quantity        int                         `json:"quantity" validate:"gt=0"`
	TestingRequired []string                    `json:"testing_required"`
	EstimatedValue  float64                     `json:"estimated_value"`
}

// PricingAgent derives quote scenarios, market position and risk from the
// deterministic price calculation.
type PricingAgent struct {
	calculator *pricing.Calculator
}

// NewPricingAgent constructs a pricing agent over loaded pricing data.
func NewPricingAgent(calc *pricing.Calculator) *PricingAgent {
	return &PricingAgent{calculator: calc}
}

// Execute prices the selected product for the tender. A missing pricing
// entry for the SKU propagates as *pricing.ErrPricingNotFound so that the
// caller can fall back rather than quote zero.
func (a *PricingAgent) Execute(_ context.Context, input PricingInput) (*types.PricingAnalysis, error) {
	calc, err := a.calculator.CalculatePrice(
		input.SelectedProduct.SKU,
		input.Quantity,
		input.TestingRequired,
		defaultServices,
	)
	if err != nil {
		return nil, err
	}

	margins := defaultTargetMargins
	scenarios := a.calculator.CalculateScenarios(calc.Total, margins)
	scenarioPrices := map[string]types.ScenarioPrice{
		"aggressive":  {Price: math.Round(scenarios.Aggressive), Margin: margins.Low},
		"recommended": {Price: math.Round(scenarios.Recommended), Margin: margins.Medium},
		"premium":     {Price: math.Round(scenarios.Premium), Margin: margins.High},
		"optimal":     {Price: math.Round(scenarios.Optimal), Margin: margins.Optimal},
	}

	market := a.calculator.EstimateMarketPrice(
		input.SelectedProduct.ProductName,
		input.SelectedProduct.Specifications,
	)
	recommended := scenarioPrices["recommended"].Price
	avgMarketPrice := market.Average * float64(input.Quantity)

	position := "competitive"
	switch {
	case recommended <= avgMarketPrice*0.95:
		position = "discount"
	case recommended >= avgMarketPrice*1.1:
		position = "premium"
	}

	return &types.PricingAnalysis{
		RecommendedPrice: recommended,
		AggressivePrice:  scenarioPrices["aggressive"].Price,
		PremiumPrice:     scenarioPrices["premium"].Price,
		Margin:           margins.Medium,
		TotalValue:       recommended,
		RiskLevel:        assessRiskLevel(input.SelectedProduct.MatchScore, margins.Medium, input.EstimatedValue, recommended),
		Breakdown:        *calc,
		Scenarios:        scenarioPrices,
		Competitive: types.CompetitiveAnalysis{
			EstimatedMarketPriceMin: math.Round(market.Min * float64(input.Quantity)),
			EstimatedMarketPriceMax: math.Round(market.Max * float64(input.Quantity)),
			EstimatedMarketPriceAvg: math.Round(avgMarketPrice),
			OurPosition:             position,
		},
	}, nil
}

// assessRiskLevel buckets quote risk from match quality, margin and the gap
// to the tender's own value estimate.
func assessRiskLevel(matchScore int, margin, estimatedValue, ourPrice float64) string {
	riskScore := 0

	switch {
	case matchScore < 80:
		riskScore += 2
	case matchScore < 90:
		riskScore++
	}

	switch {
	case margin < 10:
		riskScore += 2
	case margin < 15:
		riskScore++
	}

	if estimatedValue > 0 {
		priceDiff := (ourPrice - estimatedValue) / estimatedValue * 100
		switch {
		case priceDiff > 20:
			riskScore += 2
		case priceDiff > 10:
			riskScore++
		}
	}

	switch {
	case riskScore >= 4:
		return "high"
	case riskScore >= 2:
		return "medium"
	default:
		return "low"
	}
}
