package types

// PricingData holds the per-SKU pricing reference data. Loaded once from
// static data alongside the product catalog.
type PricingData struct {
	SKU          string             `json:"sku"`
	BasePrice    float64            `json:"basePrice"`
	TestCosts    map[string]float64 `json:"testCosts"`
	ServiceCosts map[string]float64 `json:"serviceCosts"`
}

// TestCost is one itemized test line in a price calculation.
type TestCost struct {
	TestName string  `json:"test_name"`
	Cost     float64 `json:"cost"`
}

// ServiceCost is one itemized service line in a price calculation.
type ServiceCost struct {
	ServiceName string  `json:"service_name"`
	Cost        float64 `json:"cost"`
}

// PriceCalculation is the deterministic cost roll-up for a proposed response.
// Total equals Subtotal: markup is applied by a separate pricing-strategy
// step, never inside the calculator.
type PriceCalculation struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	// UnitPrice is the effective per-unit price after quantity discount.
	UnitPrice        float64       `json:"unit_price"`
	MaterialCost     float64       `json:"material_cost"`
	TestCosts        []TestCost    `json:"test_costs"`
	TotalTestCost    float64       `json:"total_test_cost"`
	ServiceCosts     []ServiceCost `json:"service_costs"`
	TotalServiceCost float64       `json:"total_service_cost"`
	Subtotal         float64       `json:"subtotal"`
	Total            float64       `json:"total"`
}

// TargetMargins holds the margin percentages used to derive scenario prices.
type TargetMargins struct {
	Low     float64 `json:"low"`
	Medium  float64 `json:"medium"`
	High    float64 `json:"high"`
	Optimal float64 `json:"optimal"`
}

// PriceScenarios holds selling prices solved for each target margin on cost.
type PriceScenarios struct {
	Aggressive  float64 `json:"aggressive"`
	Recommended float64 `json:"recommended"`
	Premium     float64 `json:"premium"`
	Optimal     float64 `json:"optimal"`
}

// MarketEstimate is a coarse per-unit market price band for a product category.
type MarketEstimate struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// ScenarioPrice is a rounded scenario price together with its target margin.
type ScenarioPrice struct {
	Price  float64 `json:"price"`
	Margin float64 `json:"margin"`
}

// CompetitiveAnalysis positions the recommended price against the estimated
// market band for the tendered quantity.
type CompetitiveAnalysis struct {
	EstimatedMarketPriceMin float64 `json:"estimated_market_price_min"`
	EstimatedMarketPriceMax float64 `json:"estimated_market_price_max"`
	EstimatedMarketPriceAvg float64 `json:"estimated_market_price_avg"`
	// OurPosition is one of "discount", "competitive" or "premium".
	OurPosition string `json:"our_position"`
}

// PricingAnalysis is the output of the pricing agent.
type PricingAnalysis struct {
	RecommendedPrice float64          `json:"recommended_price"`
	AggressivePrice  float64          `json:"aggressive_price"`
	PremiumPrice     float64          `json:"premium_price"`
	Margin           float64          `json:"margin"`
	TotalValue       float64          `json:"total_value"`
	RiskLevel        string           `json:"risk_level"`
	Breakdown        PriceCalculation `json:"breakdown"`
	Scenarios        map[string]ScenarioPrice `json:"scenarios"`
	Competitive      CompetitiveAnalysis      `json:"competitive_analysis"`
}
