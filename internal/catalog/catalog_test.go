package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind/rfp-responder/internal/schemas"
	"github.com/arvind/rfp-responder/internal/types"
)

func TestLoad_BundledDefaults(t *testing.T) {
	cat, err := Load(context.Background(), "", "")

	require.NoError(t, err)
	assert.NotEmpty(t, cat.Products())
	assert.NotEmpty(t, cat.Pricing())

	// Every bundled product has a pricing entry
	pricingBySKU := make(map[string]bool)
	for _, p := range cat.Pricing() {
		pricingBySKU[p.SKU] = true
	}
	for _, p := range cat.Products() {
		assert.True(t, pricingBySKU[p.SKU], "missing pricing for %s", p.SKU)
	}
}

func TestLoad_CustomProductsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	content := `[
		{
			"sku": "TEST-001",
			"name": "Test Cable",
			"category": "Test",
			"specifications": {"voltage": "11kV"},
			"pricePerMeter": 100,
			"available": true
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := Load(context.Background(), path, "")

	require.NoError(t, err)
	require.Len(t, cat.Products(), 1)
	assert.Equal(t, "TEST-001", cat.Products()[0].SKU)
	assert.Equal(t, "11kV", cat.Products()[0].Specifications.Voltage)
}

func TestLoad_SchemaInvalidProductsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	// Missing required "name" and "pricePerMeter"
	content := `[{"sku": "TEST-001", "category": "Test", "specifications": {}, "available": true}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := Load(context.Background(), path, "")

	assert.Nil(t, cat)
	require.Error(t, err)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoad_MissingFile(t *testing.T) {
	cat, err := Load(context.Background(), "/nonexistent/products.json", "")

	assert.Nil(t, cat)
	assert.Error(t, err)
}

func TestProductBySKU(t *testing.T) {
	cat := New([]types.Product{{SKU: "A"}, {SKU: "B"}}, nil)

	p, ok := cat.ProductBySKU("B")
	assert.True(t, ok)
	assert.Equal(t, "B", p.SKU)

	_, ok = cat.ProductBySKU("C")
	assert.False(t, ok)
}

func TestPricingBySKU(t *testing.T) {
	cat := New(nil, []types.PricingData{{SKU: "A", BasePrice: 450}})

	p, ok := cat.PricingBySKU("A")
	assert.True(t, ok)
	assert.Equal(t, 450.0, p.BasePrice)

	_, ok = cat.PricingBySKU("B")
	assert.False(t, ok)
}
