package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arvind/rfp-responder/internal/catalog"
	"github.com/arvind/rfp-responder/internal/observability"
	"github.com/arvind/rfp-responder/internal/pricing"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Calculate the full cost breakdown for a catalog SKU",
	Long:  "Computes material, testing and service costs for a SKU and quantity, applying quantity discounts and the standard cost fallback chain.",
	RunE:  runPrice,
}

var (
	priceSKU      string
	priceQuantity int
	pricePricing  string
	priceTests    []string
	priceServices []string
	priceOutput   string
	priceVerbose  bool
)

func init() {
	priceCmd.Flags().StringVarP(&priceSKU, "sku", "s", "", "Product SKU to price (required)")
	priceCmd.Flags().IntVarP(&priceQuantity, "quantity", "q", 0, "Quantity in meters (required)")
	priceCmd.Flags().StringVarP(&pricePricing, "pricing", "p", "", "Path to pricing data JSON file (defaults to bundled data)")
	priceCmd.Flags().StringSliceVar(&priceTests, "tests", nil, "Required tests (comma-separated)")
	priceCmd.Flags().StringSliceVar(&priceServices, "services", nil, "Required services (comma-separated)")
	priceCmd.Flags().StringVarP(&priceOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	priceCmd.Flags().BoolVarP(&priceVerbose, "verbose", "v", false, "Print formatted cost breakdown")

	if err := priceCmd.MarkFlagRequired("sku"); err != nil {
		panic(fmt.Sprintf("failed to mark sku flag as required: %v", err))
	}
	if err := priceCmd.MarkFlagRequired("quantity"); err != nil {
		panic(fmt.Sprintf("failed to mark quantity flag as required: %v", err))
	}

	rootCmd.AddCommand(priceCmd)
}

func runPrice(_ *cobra.Command, _ []string) error {
	if priceQuantity <= 0 {
		return fmt.Errorf("--quantity must be positive")
	}

	// 1. Load pricing data (product side is unused here)
	cat, err := catalog.Load(context.Background(), "", pricePricing)
	if err != nil {
		return fmt.Errorf("failed to load pricing data: %w", err)
	}

	// 2. Calculate
	calculator := pricing.NewCalculator(cat.Pricing())
	calc, err := calculator.CalculatePrice(priceSKU, priceQuantity, priceTests, priceServices)
	if err != nil {
		return err
	}

	if priceVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPricingBreakdown(calc)
	}

	// 3. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(calc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal price calculation to JSON: %w", err)
	}

	return writeOutput(priceOutput, jsonOutput, fmt.Sprintf("Successfully priced %s x %d", priceSKU, priceQuantity))
}
