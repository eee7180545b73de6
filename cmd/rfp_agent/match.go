package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arvind/rfp-responder/internal/catalog"
	"github.com/arvind/rfp-responder/internal/matching"
	"github.com/arvind/rfp-responder/internal/observability"
	"github.com/arvind/rfp-responder/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a requirement spec against the product catalog",
	Long:  "Deterministically scores every catalog product against a requirement specification, producing ranked match results sorted by weighted score.",
	RunE:  runMatch,
}

var (
	matchRequirements string
	matchProducts     string
	matchTopN         int
	matchOutput       string
	matchVerbose      bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchRequirements, "requirements", "r", "", "Path to input requirement spec JSON file (required)")
	matchCmd.Flags().StringVarP(&matchProducts, "products", "p", "", "Path to product catalog JSON file (defaults to bundled catalog)")
	matchCmd.Flags().IntVar(&matchTopN, "top-n", 3, "Number of top matches to return")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print formatted match results")

	if err := matchCmd.MarkFlagRequired("requirements"); err != nil {
		panic(fmt.Sprintf("failed to mark requirements flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	// 1. Load requirement spec
	reqContent, err := os.ReadFile(matchRequirements)
	if err != nil {
		return fmt.Errorf("failed to read requirements file %s: %w", matchRequirements, err)
	}

	var req types.RequirementSpec
	if err := json.Unmarshal(reqContent, &req); err != nil {
		return fmt.Errorf("failed to unmarshal requirements JSON: %w", err)
	}

	if matchTopN < 0 {
		return fmt.Errorf("--top-n must be non-negative")
	}

	// 2. Load catalog (pricing side is unused here; bundled default is fine)
	cat, err := catalog.Load(context.Background(), matchProducts, "")
	if err != nil {
		return fmt.Errorf("failed to load product catalog: %w", err)
	}

	// 3. Score and rank
	matcher := matching.NewMatcher()
	results := matcher.FindTopMatches(req, cat.Products(), matchTopN)

	if matchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchResults(results)
	}

	// 4. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match results to JSON: %w", err)
	}

	return writeOutput(matchOutput, jsonOutput, fmt.Sprintf("Successfully matched %d products", len(results)))
}

// writeOutput writes JSON output to a file, or to stdout when path is empty.
func writeOutput(path string, jsonOutput []byte, successMsg string) error {
	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s to %s\n", successMsg, path)
	return nil
}
