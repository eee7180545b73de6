package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvind/rfp-responder/internal/types"
)

func fullSpecProduct(sku string) types.Product {
	return types.Product{
		SKU:  sku,
		Name: "11kV XLPE Cable",
		Specifications: types.ProductSpecification{
			Voltage:    "11kV",
			Conductor:  "Aluminium",
			Insulation: "XLPE",
			Size:       "3C x 185 sq.mm",
			Armoring:   "SWA",
			Standard:   "IS 7098 Part 2",
		},
	}
}

func fullSpecRequirement() types.RequirementSpec {
	return types.RequirementSpec{
		Voltage:    "11kV",
		Conductor:  "Aluminium",
		Insulation: "XLPE",
		Size:       "3C x 185 sq.mm",
		Armoring:   "SWA",
		Standard:   "IS 7098 Part 2",
	}
}

func TestMatchProduct_AllAttributesMatch(t *testing.T) {
	m := NewMatcher()

	result := m.MatchProduct(fullSpecRequirement(), fullSpecProduct("CAB-001"))

	assert.Equal(t, 100, result.MatchScore)
	assert.Len(t, result.MatchedSpecs, 6)
	assert.Empty(t, result.UnmatchedSpecs)
	assert.Len(t, result.Strengths, 6)
	assert.Empty(t, result.Gaps)
}

func TestMatchProduct_NoComparableAttributes(t *testing.T) {
	m := NewMatcher()

	req := types.RequirementSpec{Voltage: "11kV", Insulation: "XLPE"}
	product := types.Product{
		SKU: "CAB-BARE",
		Specifications: types.ProductSpecification{
			Conductor: "Copper",
			Size:      "3C x 185 sq.mm",
		},
	}

	result := m.MatchProduct(req, product)

	assert.Equal(t, 0, result.MatchScore)
	assert.Empty(t, result.MatchedSpecs)
	assert.Empty(t, result.UnmatchedSpecs)
	assert.Empty(t, result.Strengths)
	assert.Empty(t, result.Gaps)
}

func TestMatchProduct_VoltageGapNamesBothValues(t *testing.T) {
	m := NewMatcher()

	req := types.RequirementSpec{Voltage: "11kV"}
	product := types.Product{
		SKU:            "CAB-33K",
		Specifications: types.ProductSpecification{Voltage: "33kV"},
	}

	result := m.MatchProduct(req, product)

	// 0.3 raw credit is still counted even though the attribute is a gap
	assert.Equal(t, 30, result.MatchScore)
	assert.Equal(t, []string{"Voltage"}, result.UnmatchedSpecs)
	assert.Equal(t, []string{"Voltage 33kV may not match 11kV"}, result.Gaps)
	assert.Empty(t, result.MatchedSpecs)
}

func TestMatchProduct_VoltageNearMissStillCredited(t *testing.T) {
	m := NewMatcher()

	req := types.RequirementSpec{Voltage: "11kV"}
	product := types.Product{
		SKU:            "CAB-15K",
		Specifications: types.ProductSpecification{Voltage: "15kV"},
	}

	result := m.MatchProduct(req, product)

	// 0.7 is below the accept threshold but above zero credit
	assert.Equal(t, 70, result.MatchScore)
	assert.Equal(t, []string{"Voltage"}, result.UnmatchedSpecs)
}

func TestMatchProduct_SizePartialCredit(t *testing.T) {
	m := NewMatcher()

	req := types.RequirementSpec{Size: "3C x 185 sq.mm"}
	product := types.Product{
		SKU:            "CAB-240",
		Specifications: types.ProductSpecification{Size: "3C x 240 sq.mm"},
	}

	result := m.MatchProduct(req, product)

	// Same core count only: raw 0.5, damped to 0.35 of the size weight
	assert.Equal(t, 35, result.MatchScore)
	assert.Equal(t, []string{"Size/Cross-section (Partial)"}, result.MatchedSpecs)
	assert.Equal(t, []string{"Size 3C x 240 sq.mm approximately matches 3C x 185 sq.mm"}, result.Gaps)
}

func TestMatchProduct_SizeMismatchNoCredit(t *testing.T) {
	m := NewMatcher()

	req := types.RequirementSpec{Size: "3C x 185 sq.mm"}
	product := types.Product{
		SKU:            "CAB-630",
		Specifications: types.ProductSpecification{Size: "1C x 630 sq.mm"},
	}

	result := m.MatchProduct(req, product)

	assert.Equal(t, 0, result.MatchScore)
	assert.Equal(t, []string{"Size/Cross-section"}, result.UnmatchedSpecs)
}

func TestMatchProduct_ScoreWithinRange(t *testing.T) {
	m := NewMatcher()
	req := fullSpecRequirement()

	products := []types.Product{
		fullSpecProduct("CAB-001"),
		{SKU: "CAB-002", Specifications: types.ProductSpecification{Voltage: "33kV", Conductor: "Copper"}},
		{SKU: "CAB-003"},
		{SKU: "CAB-004", Specifications: types.ProductSpecification{Insulation: "PVC", Size: "2C x 2.5 sq.mm"}},
	}

	for _, p := range products {
		result := m.MatchProduct(req, p)
		assert.GreaterOrEqual(t, result.MatchScore, 0)
		assert.LessOrEqual(t, result.MatchScore, 100)
	}
}

func TestMatchProduct_Deterministic(t *testing.T) {
	m := NewMatcher()
	req := fullSpecRequirement()
	product := fullSpecProduct("CAB-001")

	first := m.MatchProduct(req, product)
	second := m.MatchProduct(req, product)

	assert.Equal(t, first, second)
}

func TestFindTopMatches_OrderedAndTruncated(t *testing.T) {
	m := NewMatcher()
	req := types.RequirementSpec{Voltage: "11kV"}

	products := []types.Product{
		{SKU: "A", Specifications: types.ProductSpecification{Voltage: "33kV"}},
		{SKU: "B", Specifications: types.ProductSpecification{Voltage: "11kV"}},
		{SKU: "C", Specifications: types.ProductSpecification{Voltage: "11kV"}},
	}

	results := m.FindTopMatches(req, products, 2)

	assert.Len(t, results, 2)
	// Equal scores keep catalog order
	assert.Equal(t, "B", results[0].Product.SKU)
	assert.Equal(t, "C", results[1].Product.SKU)
}

func TestFindTopMatches_TopNLargerThanCatalog(t *testing.T) {
	m := NewMatcher()
	req := types.RequirementSpec{Voltage: "11kV"}

	products := []types.Product{
		{SKU: "A", Specifications: types.ProductSpecification{Voltage: "11kV"}},
	}

	results := m.FindTopMatches(req, products, 10)
	assert.Len(t, results, 1)
}

func TestFindTopMatches_DoesNotMutateInput(t *testing.T) {
	m := NewMatcher()
	req := types.RequirementSpec{Voltage: "11kV"}

	products := []types.Product{
		{SKU: "A", Specifications: types.ProductSpecification{Voltage: "33kV"}},
		{SKU: "B", Specifications: types.ProductSpecification{Voltage: "11kV"}},
	}

	_ = m.FindTopMatches(req, products, 1)

	assert.Equal(t, "A", products[0].SKU)
	assert.Equal(t, "B", products[1].SKU)
}
