package types

// SpecMatchResult represents the outcome of scoring a single product against
// a requirement spec. Constructed fresh per match call; never persisted by
// the matching engine itself.
type SpecMatchResult struct {
	Product Product `json:"product"`
	// MatchScore is a weighted percentage in [0, 100] over the attributes
	// present on both sides.
	MatchScore     int      `json:"match_score"`
	MatchedSpecs   []string `json:"matched_specs"`
	UnmatchedSpecs []string `json:"unmatched_specs"`
	Strengths      []string `json:"strengths"`
	Gaps           []string `json:"gaps"`
}

// ProductRecommendation is a ranked catalog match prepared for display and
// downstream pricing.
type ProductRecommendation struct {
	Rank           int                  `json:"rank"`
	SKU            string               `json:"sku"`
	ProductName    string               `json:"product_name"`
	MatchScore     int                  `json:"match_score"`
	MatchedSpecs   []string             `json:"matched_specs"`
	UnmatchedSpecs []string             `json:"unmatched_specs"`
	Strengths      []string             `json:"strengths"`
	Gaps           []string             `json:"gaps"`
	Specifications ProductSpecification `json:"specifications"`
	Certifications []string             `json:"certifications"`
	PricePerMeter  float64              `json:"price_per_meter"`
}

// ComparisonRow is one row of the requirement-vs-products comparison table.
type ComparisonRow struct {
	Parameter      string `json:"parameter"`
	RFPRequirement string `json:"rfp_requirement"`
	Product1       string `json:"product1"`
	Product2       string `json:"product2"`
	Product3       string `json:"product3"`
}

// TechnicalAnalysis is the output of the technical agent.
type TechnicalAnalysis struct {
	ProductMatchScore   int                     `json:"product_match_score"`
	Compatible          bool                    `json:"compatible"`
	Standards           []string                `json:"standards"`
	TestingCapabilities []string                `json:"testing_capabilities"`
	Recommendations     []ProductRecommendation `json:"recommendations"`
	SelectedProduct     *ProductRecommendation  `json:"selected_product"`
	ComparisonTable     []ComparisonRow         `json:"comparison_table"`
}
