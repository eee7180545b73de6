package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arvind/rfp-responder/internal/config"
	"github.com/arvind/rfp-responder/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full tender analysis pipeline end-to-end",
	Long: `Orchestrates the entire tender response process: load reference data -> match products -> validate standards -> price the selected product -> assemble the response.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeTender      string
	analyzeProducts    string
	analyzePricing     string
	analyzeTopN        int
	analyzeVerbose     bool
	analyzeDatabaseURL string
	analyzeOutput      string
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeTender, "tender", "t", "", "Path to tender JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeProducts, "products", "p", "", "Path to product catalog JSON file (defaults to bundled catalog)")
	analyzeCmd.Flags().StringVar(&analyzePricing, "pricing", "", "Path to pricing data JSON file (defaults to bundled data)")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 0, "Number of top matches to consider")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output tender response JSON file (defaults to stdout)")

	// Database URL for artifact persistence
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("tender") {
		cfg.Tender = analyzeTender
	}
	if cmd.Flags().Changed("products") {
		cfg.Products = analyzeProducts
	}
	if cmd.Flags().Changed("pricing") {
		cfg.Pricing = analyzePricing
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = analyzeTopN
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}

	// Step 3: Validate required fields
	if cfg.Tender == "" {
		return fmt.Errorf("--tender must be provided (via flag or config)")
	}
	if cfg.TopN < 0 {
		return fmt.Errorf("--top-n must be non-negative")
	}

	// Step 4: Database URL handling (optional; artifacts are skipped without it)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	response, err := pipeline.Run(ctx, pipeline.Options{
		TenderPath:   cfg.Tender,
		ProductsPath: cfg.Products,
		PricingPath:  cfg.Pricing,
		TopN:         cfg.TopN,
		Verbose:      cfg.Verbose,
		DatabaseURL:  cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	jsonOutput, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tender response to JSON: %w", err)
	}

	return writeOutput(analyzeOutput, jsonOutput, fmt.Sprintf("Successfully analyzed tender %s", response.TenderID))
}
