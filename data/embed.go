// Package data embeds the default product catalog and pricing reference data.
package data

import _ "embed"

// Products is the bundled product catalog.
//
//go:embed products.json
var Products []byte

// Pricing is the bundled SKU pricing reference data.
//
//go:embed pricing.json
var Pricing []byte
