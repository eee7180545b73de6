// Package types provides type definitions for structured data used throughout the RFP responder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ProductSpecification holds the technical attributes of a catalog product.
type ProductSpecification struct {
	Voltage    string `json:"voltage"`
	Size       string `json:"size"`
	Conductor  string `json:"conductor"`
	Insulation string `json:"insulation"`
	Armoring   string `json:"armoring"`
	Standard   string `json:"standard"`
}

// Product represents a single catalog entry. Catalog data is loaded once at
// startup and treated as read-only for the lifetime of the process.
type Product struct {
	SKU            string               `json:"sku"`
	Name           string               `json:"name"`
	Category       string               `json:"category"`
	Specifications ProductSpecification `json:"specifications"`
	Certifications []string             `json:"certifications"`
	PricePerMeter  float64              `json:"pricePerMeter"`
	Available      bool                 `json:"available"`
}

// RequirementSpec holds the technical requirements extracted from a tender.
// Any field may be empty, in which case that attribute is skipped during
// matching and contributes to neither side of the score.
type RequirementSpec struct {
	Voltage    string `json:"voltage,omitempty"`
	Size       string `json:"size,omitempty"`
	Conductor  string `json:"conductor,omitempty"`
	Insulation string `json:"insulation,omitempty"`
	Armoring   string `json:"armoring,omitempty"`
	Standard   string `json:"standard,omitempty"`
}
