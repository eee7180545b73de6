// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/arvind/rfp-responder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirement outputs a human-readable summary of the tender requirement.
func (p *Printer) PrintRequirement(tender *types.Tender) {
	if tender == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tender:   %s\n", tender.Title))
	if tender.IssuedBy != "" {
		sb.WriteString(fmt.Sprintf("Issuer:   %s\n", tender.IssuedBy))
	}
	sb.WriteString(fmt.Sprintf("Quantity: %d\n", tender.Quantity))
	sb.WriteString("\n")

	specs := tender.Specifications
	fields := []struct{ label, value string }{
		{"Voltage", specs.Voltage},
		{"Size", specs.Size},
		{"Conductor", specs.Conductor},
		{"Insulation", specs.Insulation},
		{"Armoring", specs.Armoring},
		{"Standard", specs.Standard},
	}
	for _, f := range fields {
		if f.value != "" {
			sb.WriteString(fmt.Sprintf("  • %-11s %s\n", f.label+":", f.value))
		}
	}

	if len(tender.TestingRequired) > 0 {
		sb.WriteString("\nTesting Required:\n")
		count := min(len(tender.TestingRequired), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", tender.TestingRequired[i]))
		}
		if len(tender.TestingRequired) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(tender.TestingRequired)-maxItemsToShow))
		}
	}

	p.printBox("TENDER REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the ranked product matches with scores and gaps.
func (p *Printer) PrintMatchResults(results []types.SpecMatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Products scored: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.Product.SKU))
		sb.WriteString(fmt.Sprintf("    Score: %d%%\n", result.MatchScore))
		if len(result.MatchedSpecs) > 0 {
			matched := strings.Join(result.MatchedSpecs, ", ")
			if len(matched) > 40 {
				matched = matched[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", matched))
		}
		if len(result.Gaps) > 0 {
			gap := result.Gaps[0]
			if len(gap) > 44 {
				gap = gap[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Gap: %s\n", gap))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more products", len(results)-maxItemsToShow))
	}

	p.printBox("TOP PRODUCT MATCHES", sb.String())
}

// PrintComparisonTable outputs the requirement-vs-products comparison rows.
func (p *Printer) PrintComparisonTable(rows []types.ComparisonRow) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%s\n", row.Parameter))
		sb.WriteString(fmt.Sprintf("  req: %-14s #1: %s\n", row.RFPRequirement, row.Product1))
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SPEC COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPricingBreakdown outputs the itemized cost roll-up.
func (p *Printer) PrintPricingBreakdown(calc *types.PriceCalculation) {
	if calc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("SKU:       %s\n", calc.SKU))
	sb.WriteString(fmt.Sprintf("Quantity:  %d @ ₹%.2f\n", calc.Quantity, calc.UnitPrice))
	sb.WriteString(fmt.Sprintf("Material:  ₹%.2f\n", calc.MaterialCost))
	sb.WriteString("\n")

	if len(calc.TestCosts) > 0 {
		sb.WriteString("Tests:\n")
		count := min(len(calc.TestCosts), maxItemsToShow)
		for i := 0; i < count; i++ {
			t := calc.TestCosts[i]
			sb.WriteString(fmt.Sprintf("  • %-28s ₹%.0f\n", t.TestName, t.Cost))
		}
		if len(calc.TestCosts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(calc.TestCosts)-maxItemsToShow))
		}
	}
	if len(calc.ServiceCosts) > 0 {
		sb.WriteString("Services:\n")
		for _, s := range calc.ServiceCosts {
			sb.WriteString(fmt.Sprintf("  • %-28s ₹%.0f\n", s.ServiceName, s.Cost))
		}
	}

	sb.WriteString(fmt.Sprintf("\nSubtotal:  ₹%.2f\n", calc.Subtotal))
	sb.WriteString(fmt.Sprintf("Total:     ₹%.2f", calc.Total))

	p.printBox("PRICING BREAKDOWN", sb.String())
}

// PrintScenarios outputs the margin scenarios and market position.
func (p *Printer) PrintScenarios(analysis *types.PricingAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	order := []string{"aggressive", "recommended", "premium", "optimal"}
	for _, name := range order {
		if s, ok := analysis.Scenarios[name]; ok {
			sb.WriteString(fmt.Sprintf("%-12s ₹%.0f (%.0f%% margin)\n", name, s.Price, s.Margin))
		}
	}
	sb.WriteString(fmt.Sprintf("\nRisk:     %s\n", analysis.RiskLevel))
	sb.WriteString(fmt.Sprintf("Position: %s", analysis.Competitive.OurPosition))

	p.printBox("PRICING SCENARIOS", sb.String())
}
