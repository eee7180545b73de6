// Package catalog loads and serves the product catalog and SKU pricing
// reference data. Both datasets are read-only after load.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/arvind/rfp-responder/data"
	"github.com/arvind/rfp-responder/internal/schemas"
	"github.com/arvind/rfp-responder/internal/types"
	schemafiles "github.com/arvind/rfp-responder/schemas"
)

// Catalog holds the loaded reference data. Safe for concurrent use once
// constructed.
type Catalog struct {
	products     []types.Product
	pricing      []types.PricingData
	bySKU        map[string]types.Product
	pricingBySKU map[string]types.PricingData
}

// Load reads, validates and parses the catalog and pricing files. The two
// files are processed concurrently. An empty path selects the bundled
// default dataset for that file.
func Load(ctx context.Context, productsPath, pricingPath string) (*Catalog, error) {
	var (
		products []types.Product
		pricing  []types.PricingData
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := readOrDefault(productsPath, data.Products)
		if err != nil {
			return fmt.Errorf("reading product catalog: %w", err)
		}
		if err := schemas.ValidateJSONString("product_catalog", schemafiles.ProductCatalog, string(raw)); err != nil {
			return fmt.Errorf("product catalog: %w", err)
		}
		if err := json.Unmarshal(raw, &products); err != nil {
			return fmt.Errorf("parsing product catalog: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		raw, err := readOrDefault(pricingPath, data.Pricing)
		if err != nil {
			return fmt.Errorf("reading pricing data: %w", err)
		}
		if err := schemas.ValidateJSONString("pricing_data", schemafiles.PricingData, string(raw)); err != nil {
			return fmt.Errorf("pricing data: %w", err)
		}
		if err := json.Unmarshal(raw, &pricing); err != nil {
			return fmt.Errorf("parsing pricing data: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(products, pricing), nil
}

// New builds a Catalog from already-parsed reference data.
func New(products []types.Product, pricing []types.PricingData) *Catalog {
	bySKU := make(map[string]types.Product, len(products))
	for _, p := range products {
		bySKU[p.SKU] = p
	}
	pricingBySKU := make(map[string]types.PricingData, len(pricing))
	for _, p := range pricing {
		pricingBySKU[p.SKU] = p
	}
	return &Catalog{products: products, pricing: pricing, bySKU: bySKU, pricingBySKU: pricingBySKU}
}

// Products returns all catalog products in file order.
func (c *Catalog) Products() []types.Product {
	return c.products
}

// Pricing returns all pricing reference entries.
func (c *Catalog) Pricing() []types.PricingData {
	return c.pricing
}

// ProductBySKU looks up a product by its SKU.
func (c *Catalog) ProductBySKU(sku string) (types.Product, bool) {
	p, ok := c.bySKU[sku]
	return p, ok
}

// PricingBySKU looks up the pricing entry for a SKU.
func (c *Catalog) PricingBySKU(sku string) (types.PricingData, bool) {
	p, ok := c.pricingBySKU[sku]
	return p, ok
}

func readOrDefault(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	return os.ReadFile(path)
}
