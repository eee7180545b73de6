package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind/rfp-responder/internal/db"
	"github.com/arvind/rfp-responder/internal/types"
)

func testTender() *types.Tender {
	return &types.Tender{
		ID:    "TND-2026-001",
		Title: "Supply of 11kV XLPE Cables",
		Specifications: types.RequirementSpec{
			Voltage:    "11kV",
			Conductor:  "Aluminum",
			Insulation: "XLPE",
			Size:       "3C x 185 sq.mm",
			Armoring:   "SWA",
			Standard:   "IS 7098",
		},
		Quantity:        5000,
		TestingRequired: []string{"Routine Test", "High Voltage Test"},
		EstimatedValue:  9000000,
	}
}

func TestRun_EndToEndWithBundledData(t *testing.T) {
	response, err := Run(context.Background(), Options{
		Tender: testTender(),
		TopN:   3,
	})

	require.NoError(t, err)
	assert.Equal(t, "TND-2026-001", response.TenderID)

	require.NotNil(t, response.Technical)
	require.NotNil(t, response.Technical.SelectedProduct)
	assert.True(t, response.Technical.Compatible)
	assert.NotEmpty(t, response.Technical.Standards)
	assert.NotEmpty(t, response.Technical.ComparisonTable)
	assert.LessOrEqual(t, len(response.Technical.Recommendations), 3)

	require.NotNil(t, response.Pricing)
	assert.Greater(t, response.Pricing.RecommendedPrice, 0.0)
	assert.Greater(t, response.Pricing.AggressivePrice, 0.0)
	assert.Less(t, response.Pricing.AggressivePrice, response.Pricing.PremiumPrice)
	assert.Contains(t, []string{"low", "medium", "high"}, response.Pricing.RiskLevel)
	assert.Equal(t, response.Pricing.Breakdown.Subtotal, response.Pricing.Breakdown.Total)
}

func TestRun_TenderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tender.json")
	content := `{
		"id": "TND-FILE-001",
		"title": "File Tender",
		"specifications": {"voltage": "11kV"},
		"quantity": 1000
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	response, err := Run(context.Background(), Options{TenderPath: path})

	require.NoError(t, err)
	assert.Equal(t, "TND-FILE-001", response.TenderID)
}

func TestRun_MissingTenderFile(t *testing.T) {
	response, err := Run(context.Background(), Options{
		TenderPath: filepath.Join(t.TempDir(), "missing.json"),
	})

	assert.Nil(t, response)
	assert.Error(t, err)
}

func TestRun_ProgressEvents(t *testing.T) {
	var steps []string
	_, err := Run(context.Background(), Options{
		Tender: testTender(),
		OnProgress: func(event ProgressEvent) {
			steps = append(steps, event.Step)
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		db.StepTenderInput,
		db.StepTechnicalAnalysis,
		db.StepPricingAnalysis,
		db.StepTenderResponse,
	}, steps)
}

func TestLoadTender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tender.json")
	content := `{"id": "TND-001", "title": "Test", "quantity": 500}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tender, err := LoadTender(path)

	require.NoError(t, err)
	assert.Equal(t, "TND-001", tender.ID)
	assert.Equal(t, 500, tender.Quantity)
}

func TestLoadTender_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tender.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	tender, err := LoadTender(path)
	assert.Nil(t, tender)
	assert.Error(t, err)
}

func TestToMatchResults(t *testing.T) {
	recs := []types.ProductRecommendation{
		{
			SKU:         "CAB-001",
			ProductName: "Test Cable",
			MatchScore:  88,
			Strengths:   []string{"Voltage rating 11kV matches requirement"},
		},
	}

	results := toMatchResults(recs)

	require.Len(t, results, 1)
	assert.Equal(t, "CAB-001", results[0].Product.SKU)
	assert.Equal(t, "Test Cable", results[0].Product.Name)
	assert.Equal(t, 88, results[0].MatchScore)
	assert.Equal(t, recs[0].Strengths, results[0].Strengths)
}
