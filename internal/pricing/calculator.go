// Package pricing computes deterministic cost roll-ups for proposed tender
// responses from SKU-level reference data.
package pricing

import (
	"sort"
	"strings"

	"github.com/arvind/rfp-responder/internal/types"
)

// Default costs applied when a requested test or service has no entry in the
// SKU's cost map and no keyword default matches.
const (
	defaultTestCost    = 50000.0
	defaultServiceCost = 20000.0
)

// defaultTestCosts maps recognizable substrings of a requested test name to
// a fallback cost. Checked in order.
var defaultTestCosts = []struct {
	keyword string
	cost    float64
}{
	{"routine", 25000},
	{"type", 150000},
	{"sample", 50000},
	{"high voltage", 75000},
	{"partial discharge", 80000},
	{"fire", 100000},
}

// defaultServiceCosts is the service counterpart of defaultTestCosts.
var defaultServiceCosts = []struct {
	keyword string
	cost    float64
}{
	{"delivery", 15000},
	{"installation", 50000},
	{"commissioning", 75000},
	{"documentation", 10000},
}

// Calculator prices tender responses against SKU-keyed reference data. The
// reference data is read-only after construction; the Calculator is safe for
// concurrent use.
type Calculator struct {
	bySKU map[string]types.PricingData
}

// NewCalculator builds a Calculator over the given pricing reference data.
func NewCalculator(data []types.PricingData) *Calculator {
	bySKU := make(map[string]types.PricingData, len(data))
	for _, p := range data {
		bySKU[p.SKU] = p
	}
	return &Calculator{bySKU: bySKU}
}

// CalculatePrice computes the full cost roll-up for a SKU and quantity with
// itemized test and service costs. Returns *ErrPricingNotFound when the SKU
// has no pricing entry; no partial computation is performed in that case.
func (c *Calculator) CalculatePrice(sku string, quantity int, testsRequired, servicesRequired []string) (*types.PriceCalculation, error) {
	data, ok := c.bySKU[sku]
	if !ok {
		return nil, &ErrPricingNotFound{SKU: sku}
	}

	unitPrice := applyQuantityDiscount(data.BasePrice, quantity)
	materialCost := unitPrice * float64(quantity)

	testCosts := make([]types.TestCost, 0, len(testsRequired))
	totalTestCost := 0.0
	for _, name := range testsRequired {
		cost := resolveTestCost(name, data.TestCosts)
		testCosts = append(testCosts, types.TestCost{TestName: name, Cost: cost})
		totalTestCost += cost
	}

	serviceCosts := make([]types.ServiceCost, 0, len(servicesRequired))
	totalServiceCost := 0.0
	for _, name := range servicesRequired {
		cost := resolveServiceCost(name, data.ServiceCosts)
		serviceCosts = append(serviceCosts, types.ServiceCost{ServiceName: name, Cost: cost})
		totalServiceCost += cost
	}

	subtotal := materialCost + totalTestCost + totalServiceCost

	return &types.PriceCalculation{
		SKU:              sku,
		Quantity:         quantity,
		UnitPrice:        unitPrice,
		MaterialCost:     materialCost,
		TestCosts:        testCosts,
		TotalTestCost:    totalTestCost,
		ServiceCosts:     serviceCosts,
		TotalServiceCost: totalServiceCost,
		Subtotal:         subtotal,
		Total:            subtotal, // markup belongs to the pricing-strategy layer
	}, nil
}

// CalculateMargin returns the margin percentage of sellingPrice over
// totalCost. Returns 0 for a zero selling price rather than dividing by zero.
func (c *Calculator) CalculateMargin(totalCost, sellingPrice float64) float64 {
	if sellingPrice == 0 {
		return 0
	}
	return (sellingPrice - totalCost) / sellingPrice * 100
}

// CalculateScenarios solves, for each target margin, the selling price that
// yields that margin on baseCost.
func (c *Calculator) CalculateScenarios(baseCost float64, margins types.TargetMargins) types.PriceScenarios {
	return types.PriceScenarios{
		Aggressive:  baseCost / (1 - margins.Low/100),
		Recommended: baseCost / (1 - margins.Medium/100),
		Premium:     baseCost / (1 - margins.High/100),
		Optimal:     baseCost / (1 - margins.Optimal/100),
	}
}

// EstimateMarketPrice returns a coarse per-unit market price band for a
// product category. Categories outside the known bands get a generic default.
func (c *Calculator) EstimateMarketPrice(category string, _ types.ProductSpecification) types.MarketEstimate {
	baseMin, baseMax := 500.0, 2000.0

	switch {
	case strings.Contains(category, "High Voltage"):
		baseMin, baseMax = 3000, 5000
	case strings.Contains(category, "Medium Voltage"):
		baseMin, baseMax = 1000, 2500
	case strings.Contains(category, "Fire Survival"):
		baseMin, baseMax = 350, 600
	case strings.Contains(category, "Aerial"):
		baseMin, baseMax = 400, 700
	}

	return types.MarketEstimate{Min: baseMin, Max: baseMax, Average: (baseMin + baseMax) / 2}
}

// applyQuantityDiscount applies the volume discount tier to the base price.
// Tiers are mutually exclusive, highest threshold first.
func applyQuantityDiscount(unitPrice float64, quantity int) float64 {
	switch {
	case quantity >= 10000:
		return unitPrice * 0.85
	case quantity >= 5000:
		return unitPrice * 0.90
	case quantity >= 2000:
		return unitPrice * 0.95
	default:
		return unitPrice
	}
}

// resolveTestCost resolves a test name to a cost: exact key match first,
// then bidirectional substring match against existing keys, then keyword
// defaults, then the flat default. The order is load-bearing; it guarantees
// every requested test receives some cost.
func resolveTestCost(testName string, costs map[string]float64) float64 {
	if cost, ok := costs[testName]; ok && cost != 0 {
		return cost
	}

	normalized := strings.ToLower(testName)
	for _, key := range sortedKeys(costs) {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, normalized) || strings.Contains(normalized, keyLower) {
			return costs[key]
		}
	}

	for _, def := range defaultTestCosts {
		if strings.Contains(normalized, def.keyword) {
			return def.cost
		}
	}
	return defaultTestCost
}

// resolveServiceCost mirrors resolveTestCost for service names.
func resolveServiceCost(serviceName string, costs map[string]float64) float64 {
	if cost, ok := costs[serviceName]; ok && cost != 0 {
		return cost
	}

	normalized := strings.ToLower(serviceName)
	for _, key := range sortedKeys(costs) {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, normalized) || strings.Contains(normalized, keyLower) {
			return costs[key]
		}
	}

	for _, def := range defaultServiceCosts {
		if strings.Contains(normalized, def.keyword) {
			return def.cost
		}
	}
	return defaultServiceCost
}

// sortedKeys keeps the substring fallback deterministic across calls.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
