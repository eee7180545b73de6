package pricing

import "fmt"

// ErrPricingNotFound indicates the pricing reference data has no entry for a
// SKU. Callers must treat this as recoverable, e.g. by falling back to a
// market estimate, rather than quoting zero.
type ErrPricingNotFound struct {
	SKU string
}

func (e *ErrPricingNotFound) Error() string {
	return fmt.Sprintf("pricing data not found for SKU: %s", e.SKU)
}
