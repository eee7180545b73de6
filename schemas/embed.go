// Package schemas embeds the JSON Schema documents for reference data files.
package schemas

import _ "embed"

// ProductCatalog is the schema for products.json.
//
//go:embed product_catalog.schema.json
var ProductCatalog string

// PricingData is the schema for pricing.json.
//
//go:embed pricing_data.schema.json
var PricingData string
