package types

// Tender represents one RFP as supplied by the extraction collaborator.
// The specs are already structured; this core never parses tender documents.
type Tender struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	IssuedBy        string          `json:"issued_by,omitempty"`
	Specifications  RequirementSpec `json:"specifications"`
	Quantity        int             `json:"quantity"`
	TestingRequired []string        `json:"testing_required,omitempty"`
	Certifications  []string        `json:"certifications,omitempty"`
	EstimatedValue  float64         `json:"estimated_value,omitempty"`
}

// TenderResponse is the assembled output of a full pipeline run.
type TenderResponse struct {
	TenderID  string             `json:"tender_id"`
	Technical *TechnicalAnalysis `json:"technical_analysis"`
	Pricing   *PricingAnalysis   `json:"pricing_analysis"`
}
