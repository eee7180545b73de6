// Package agents implements the tender response agents that sit on top of
// the matching and pricing engines.
package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/arvind/rfp-responder/internal/catalog"
	"github.com/arvind/rfp-responder/internal/matching"
	"github.com/arvind/rfp-responder/internal/types"
)

// compatibleThreshold is the minimum match score for a recommendation to be
// considered a compatible offer.
const compatibleThreshold = 70

// testCapabilities maps required-test keywords to in-house capability
// descriptions.
var testCapabilities = []struct {
	keyword    string
	capability string
}{
	{"routine", "Routine Test - In-house lab"},
	{"type", "Type Test - NABL accredited facility"},
	{"sample", "Sample Test - Available"},
	{"high voltage", "High Voltage Test - CPRI approved lab"},
	{"partial discharge", "Partial Discharge Test - Available"},
	{"conductor resistance", "Conductor Resistance Test - In-house"},
	{"insulation resistance", "Insulation Resistance Test - In-house"},
	{"impulse", "Impulse Voltage Test - Available"},
	{"thermal", "Thermal Cycling Test - Available"},
	{"flame", "Flame Retardant Test - NABL accredited"},
	{"fire", "Fire Survival Test - BS 6387 certified lab"},
	{"smoke", "Smoke Density Test - Available"},
	{"uv", "UV Resistance Test - Available"},
	{"weather", "Weather Resistance Test - Available"},
	{"tensile", "Tensile Strength Test - Available"},
}

// TechnicalInput carries the extracted tender requirements into the
// technical agent.
type TechnicalInput struct {
	TenderID        string                `json:"tender_id" validate:"required"`
	Specs           types.RequirementSpec `json:"specs"`
	TestingRequired []string              `json:"testing_required"`
	Certifications  []string              `json:"certifications"`
	TopN            int                   `json:"top_n" validate:"gte=0"`
}

// TechnicalAgent matches tender requirements against the product catalog and
// assesses standards and testing compliance.
type TechnicalAgent struct {
	matcher *matching.Matcher
	catalog *catalog.Catalog
}

// NewTechnicalAgent constructs a technical agent over a loaded catalog.
func NewTechnicalAgent(matcher *matching.Matcher, cat *catalog.Catalog) *TechnicalAgent {
	return &TechnicalAgent{matcher: matcher, catalog: cat}
}

// Execute ranks catalog products for the tender and assembles the full
// technical analysis. The context is accepted for interface symmetry with
// the pricing agent; the work itself is pure computation.
func (a *TechnicalAgent) Execute(_ context.Context, input TechnicalInput) (*types.TechnicalAnalysis, error) {
	topN := input.TopN
	if topN == 0 {
		topN = 3
	}

	matches := a.matcher.FindTopMatches(input.Specs, a.catalog.Products(), topN)

	recommendations := make([]types.ProductRecommendation, 0, len(matches))
	for i, match := range matches {
		recommendations = append(recommendations, types.ProductRecommendation{
			Rank:           i + 1,
			SKU:            match.Product.SKU,
			ProductName:    match.Product.Name,
			MatchScore:     match.MatchScore,
			MatchedSpecs:   match.MatchedSpecs,
			UnmatchedSpecs: match.UnmatchedSpecs,
			Strengths:      match.Strengths,
			Gaps:           match.Gaps,
			Specifications: match.Product.Specifications,
			Certifications: match.Product.Certifications,
			PricePerMeter:  match.Product.PricePerMeter,
		})
	}

	var selected *types.ProductRecommendation
	if len(recommendations) > 0 {
		selected = &recommendations[0]
	}

	analysis := &types.TechnicalAnalysis{
		Recommendations:     recommendations,
		SelectedProduct:     selected,
		Standards:           validateStandards(input.Specs, input.Certifications),
		TestingCapabilities: assessTestingCapabilities(input.TestingRequired),
		ComparisonTable:     buildComparisonTable(input.Specs, recommendations),
	}
	if selected != nil {
		analysis.ProductMatchScore = selected.MatchScore
		analysis.Compatible = selected.MatchScore >= compatibleThreshold
	}
	return analysis, nil
}

// validateStandards collects the standards the offer must comply with: the
// tender's own standard, voltage-implied standards, standard-like
// certification strings, and the house certifications.
func validateStandards(specs types.RequirementSpec, requiredCerts []string) []string {
	var standards []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			standards = append(standards, s)
		}
	}

	if specs.Standard != "" {
		add(specs.Standard)
	}

	if specs.Voltage != "" {
		switch {
		case strings.Contains(specs.Voltage, "11"),
			strings.Contains(specs.Voltage, "22"),
			strings.Contains(specs.Voltage, "33"):
			add("IS 7098 Part 2")
			add("IEC 60502-2")
		case strings.Contains(specs.Voltage, "1.1"),
			strings.Contains(specs.Voltage, "0.6"):
			add("IS 1554")
			add("IEC 60227")
		}
	}

	for _, cert := range requiredCerts {
		if strings.Contains(cert, "IS ") || strings.Contains(cert, "IEC ") || strings.Contains(cert, "BS ") {
			add(cert)
		}
	}

	add("BIS Certified")
	add("ISO 9001:2015")

	return standards
}

// assessTestingCapabilities maps the tender's required tests onto the
// testing capabilities we can offer.
func assessTestingCapabilities(requiredTests []string) []string {
	var capabilities []string
	seen := make(map[string]bool)

	for _, test := range requiredTests {
		testLower := strings.ToLower(test)
		for _, tc := range testCapabilities {
			if strings.Contains(testLower, tc.keyword) && !seen[tc.capability] {
				seen[tc.capability] = true
				capabilities = append(capabilities, tc.capability)
			}
		}
	}

	if len(capabilities) == 0 {
		capabilities = []string{
			"Routine Test - In-house lab",
			"Type Test - Available",
			"Sample Test - NABL accredited",
		}
	}
	return capabilities
}

// buildComparisonTable lays out requirement vs top-3 product values for the
// six spec parameters plus a price row.
func buildComparisonTable(specs types.RequirementSpec, recs []types.ProductRecommendation) []types.ComparisonRow {
	parameters := []struct {
		label string
		req   string
		get   func(types.ProductSpecification) string
	}{
		{"Voltage Rating", specs.Voltage, func(s types.ProductSpecification) string { return s.Voltage }},
		{"Size/Cross-section", specs.Size, func(s types.ProductSpecification) string { return s.Size }},
		{"Conductor Material", specs.Conductor, func(s types.ProductSpecification) string { return s.Conductor }},
		{"Insulation Type", specs.Insulation, func(s types.ProductSpecification) string { return s.Insulation }},
		{"Armoring", specs.Armoring, func(s types.ProductSpecification) string { return s.Armoring }},
		{"Standard", specs.Standard, func(s types.ProductSpecification) string { return s.Standard }},
	}

	cell := func(i int, get func(types.ProductSpecification) string) string {
		if i >= len(recs) {
			return "-"
		}
		if v := get(recs[i].Specifications); v != "" {
			return v
		}
		return "-"
	}

	table := make([]types.ComparisonRow, 0, len(parameters)+1)
	for _, p := range parameters {
		req := p.req
		if req == "" {
			req = "Not specified"
		}
		table = append(table, types.ComparisonRow{
			Parameter:      p.label,
			RFPRequirement: req,
			Product1:       cell(0, p.get),
			Product2:       cell(1, p.get),
			Product3:       cell(2, p.get),
		})
	}

	price := func(i int) string {
		if i >= len(recs) {
			return "-"
		}
		return fmt.Sprintf("₹%g", recs[i].PricePerMeter)
	}
	table = append(table, types.ComparisonRow{
		Parameter:      "Price per Meter",
		RFPRequirement: "-",
		Product1:       price(0),
		Product2:       price(1),
		Product3:       price(2),
	})

	return table
}
