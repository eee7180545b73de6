package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind/rfp-responder/internal/catalog"
	"github.com/arvind/rfp-responder/internal/matching"
	"github.com/arvind/rfp-responder/internal/types"
)

func testCatalog() *catalog.Catalog {
	products := []types.Product{
		{
			SKU:  "CAB-11K-3C185-AL",
			Name: "11kV XLPE Aluminium Cable",
			Specifications: types.ProductSpecification{
				Voltage:    "11kV",
				Conductor:  "Aluminium",
				Insulation: "XLPE",
				Size:       "3C x 185 sq.mm",
				Armoring:   "SWA",
				Standard:   "IS 7098",
			},
			Certifications: []string{"BIS", "ISO 9001:2015"},
			PricePerMeter:  1450,
			Available:      true,
		},
		{
			SKU:  "CAB-33K-3C400-AL",
			Name: "33kV XLPE Aluminium Cable",
			Specifications: types.ProductSpecification{
				Voltage:    "33kV",
				Conductor:  "Aluminium",
				Insulation: "XLPE",
				Size:       "3C x 400 sq.mm",
				Armoring:   "SWA",
				Standard:   "IS 7098",
			},
			PricePerMeter: 2950,
			Available:     true,
		},
	}
	return catalog.New(products, nil)
}

func TestTechnicalAgent_SelectsTopMatch(t *testing.T) {
	agent := NewTechnicalAgent(matching.NewMatcher(), testCatalog())

	analysis, err := agent.Execute(context.Background(), TechnicalInput{
		TenderID: "TND-001",
		Specs: types.RequirementSpec{
			Voltage:    "11kV",
			Conductor:  "Aluminium",
			Insulation: "XLPE",
			Size:       "3C x 185 sq.mm",
			Armoring:   "SWA",
			Standard:   "IS 7098",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, analysis.SelectedProduct)
	assert.Equal(t, "CAB-11K-3C185-AL", analysis.SelectedProduct.SKU)
	assert.Equal(t, 1, analysis.SelectedProduct.Rank)
	assert.Equal(t, 100, analysis.ProductMatchScore)
	assert.True(t, analysis.Compatible)
	assert.Len(t, analysis.Recommendations, 2)
}

func TestTechnicalAgent_EmptyCatalog(t *testing.T) {
	agent := NewTechnicalAgent(matching.NewMatcher(), catalog.New(nil, nil))

	analysis, err := agent.Execute(context.Background(), TechnicalInput{TenderID: "TND-001"})

	require.NoError(t, err)
	assert.Nil(t, analysis.SelectedProduct)
	assert.False(t, analysis.Compatible)
	assert.Equal(t, 0, analysis.ProductMatchScore)
	assert.Empty(t, analysis.Recommendations)
}

func TestTechnicalAgent_IncompatibleBelowThreshold(t *testing.T) {
	products := []types.Product{
		{
			SKU:  "CAB-LV",
			Name: "LV Cable",
			Specifications: types.ProductSpecification{
				Voltage:    "1.1kV",
				Conductor:  "Copper",
				Insulation: "PVC",
			},
		},
	}
	agent := NewTechnicalAgent(matching.NewMatcher(), catalog.New(products, nil))

	analysis, err := agent.Execute(context.Background(), TechnicalInput{
		TenderID: "TND-002",
		Specs: types.RequirementSpec{
			Voltage:    "33kV",
			Conductor:  "Aluminium",
			Insulation: "XLPE",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, analysis.SelectedProduct)
	assert.Less(t, analysis.ProductMatchScore, 70)
	assert.False(t, analysis.Compatible)
}

func TestValidateStandards_MediumVoltage(t *testing.T) {
	standards := validateStandards(types.RequirementSpec{Voltage: "11kV"}, nil)

	assert.Equal(t, []string{
		"IS 7098 Part 2",
		"IEC 60502-2",
		"BIS Certified",
		"ISO 9001:2015",
	}, standards)
}

func TestValidateStandards_LowVoltage(t *testing.T) {
	standards := validateStandards(types.RequirementSpec{Voltage: "1.1kV"}, nil)

	assert.Contains(t, standards, "IS 1554")
	assert.Contains(t, standards, "IEC 60227")
}

func TestValidateStandards_DeduplicatesTenderStandard(t *testing.T) {
	standards := validateStandards(types.RequirementSpec{
		Voltage:  "11kV",
		Standard: "IS 7098 Part 2",
	}, nil)

	count := 0
	for _, s := range standards {
		if s == "IS 7098 Part 2" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "IS 7098 Part 2", standards[0])
}

func TestValidateStandards_FiltersCertifications(t *testing.T) {
	standards := validateStandards(types.RequirementSpec{}, []string{
		"IEC 61089",
		"CPRI Type Tested",
		"BS 6387",
	})

	assert.Contains(t, standards, "IEC 61089")
	assert.Contains(t, standards, "BS 6387")
	assert.NotContains(t, standards, "CPRI Type Tested")
}

func TestAssessTestingCapabilities_KeywordMapping(t *testing.T) {
	capabilities := assessTestingCapabilities([]string{
		"Routine Test",
		"High Voltage Test",
		"Fire Survival Test",
	})

	assert.Contains(t, capabilities, "Routine Test - In-house lab")
	assert.Contains(t, capabilities, "High Voltage Test - CPRI approved lab")
	assert.Contains(t, capabilities, "Fire Survival Test - BS 6387 certified lab")
}

func TestAssessTestingCapabilities_DefaultsWhenNoneMatch(t *testing.T) {
	capabilities := assessTestingCapabilities([]string{"Unknown Procedure"})

	assert.Equal(t, []string{
		"Routine Test - In-house lab",
		"Type Test - Available",
		"Sample Test - NABL accredited",
	}, capabilities)
}

func TestAssessTestingCapabilities_Deduplicates(t *testing.T) {
	capabilities := assessTestingCapabilities([]string{"Routine Test", "Routine Electrical Test"})

	count := 0
	for _, c := range capabilities {
		if c == "Routine Test - In-house lab" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildComparisonTable_Placeholders(t *testing.T) {
	recs := []types.ProductRecommendation{
		{
			SKU: "CAB-001",
			Specifications: types.ProductSpecification{
				Voltage: "11kV",
			},
			PricePerMeter: 1450,
		},
	}

	table := buildComparisonTable(types.RequirementSpec{Voltage: "11kV"}, recs)

	require.Len(t, table, 7)

	voltage := table[0]
	assert.Equal(t, "Voltage Rating", voltage.Parameter)
	assert.Equal(t, "11kV", voltage.RFPRequirement)
	assert.Equal(t, "11kV", voltage.Product1)
	assert.Equal(t, "-", voltage.Product2)
	assert.Equal(t, "-", voltage.Product3)

	size := table[1]
	assert.Equal(t, "Not specified", size.RFPRequirement)
	assert.Equal(t, "-", size.Product1)

	price := table[6]
	assert.Equal(t, "Price per Meter", price.Parameter)
	assert.Equal(t, "-", price.RFPRequirement)
	assert.Equal(t, "₹1450", price.Product1)
	assert.Equal(t, "-", price.Product2)
}
