// Package pipeline provides the high-level orchestration for tender response
// generation.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/arvind/rfp-responder/internal/agents"
	"github.com/arvind/rfp-responder/internal/catalog"
	"github.com/arvind/rfp-responder/internal/db"
	"github.com/arvind/rfp-responder/internal/matching"
	"github.com/arvind/rfp-responder/internal/observability"
	"github.com/arvind/rfp-responder/internal/pricing"
	"github.com/arvind/rfp-responder/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the pipeline
type Options struct {
	TenderPath   string
	Tender       *types.Tender // Direct injection; takes precedence over TenderPath
	ProductsPath string
	PricingPath  string
	TopN         int
	Verbose      bool
	DatabaseURL  string
	OnProgress   ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// Run orchestrates the full tender response pipeline: load reference data,
// match products, price the selected product, assemble the response.
func Run(ctx context.Context, opts Options) (*types.TenderResponse, error) {
	printer := observability.NewPrinter(os.Stdout)

	// Connect database if configured; analysis proceeds without persistence
	// when the database is unreachable.
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
		}
	}

	fmt.Printf("Step 1/4: Loading tender requirement...\n")
	tender := opts.Tender
	if tender == nil {
		var err error
		tender, err = LoadTender(opts.TenderPath)
		if err != nil {
			return nil, fmt.Errorf("loading tender failed: %w", err)
		}
	}
	if opts.Verbose {
		printer.PrintRequirement(tender)
	}
	emitProgress(&opts, db.StepTenderInput, db.CategoryIngestion,
		fmt.Sprintf("Loaded tender %s", tender.ID), tender)

	if database != nil {
		var err error
		runID, err = database.CreateRun(ctx, tender.ID, tender.Title)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		} else {
			_ = database.SaveArtifact(ctx, runID, db.StepTenderInput, db.CategoryIngestion, tender)
		}
	}

	fmt.Printf("Step 2/4: Loading product catalog and pricing data...\n")
	cat, err := catalog.Load(ctx, opts.ProductsPath, opts.PricingPath)
	if err != nil {
		return nil, fmt.Errorf("loading reference data failed: %w", err)
	}

	fmt.Printf("Step 3/4: Matching products...\n")
	technicalAgent := agents.NewTechnicalAgent(matching.NewMatcher(), cat)
	technical, err := technicalAgent.Execute(ctx, agents.TechnicalInput{
		TenderID:        tender.ID,
		Specs:           tender.Specifications,
		TestingRequired: tender.TestingRequired,
		Certifications:  tender.Certifications,
		TopN:            opts.TopN,
	})
	if err != nil {
		return nil, fmt.Errorf("technical analysis failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintMatchResults(toMatchResults(technical.Recommendations))
		printer.PrintComparisonTable(technical.ComparisonTable)
	}
	emitProgress(&opts, db.StepTechnicalAnalysis, db.CategoryTechnical,
		fmt.Sprintf("Scored %d products", len(technical.Recommendations)), technical)

	// Persist the technical artifact while pricing runs; the two are
	// independent once the selected product is known.
	fmt.Printf("Step 4/4: Pricing selected product...\n")
	var pricingAnalysis *types.PricingAnalysis
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if database == nil || runID == uuid.Nil {
			return nil
		}
		if err := database.SaveArtifact(gCtx, runID, db.StepTechnicalAnalysis, db.CategoryTechnical, technical); err != nil {
			fmt.Printf("Warning: Failed to save technical artifact: %v\n", err)
		}
		return nil
	})

	g.Go(func() error {
		if technical.SelectedProduct == nil {
			return nil
		}
		pricingAgent := agents.NewPricingAgent(pricing.NewCalculator(cat.Pricing()))
		analysis, err := pricingAgent.Execute(gCtx, agents.PricingInput{
			TenderID:        tender.ID,
			SelectedProduct: *technical.SelectedProduct,
			Quantity:        tender.Quantity,
			TestingRequired: tender.TestingRequired,
			EstimatedValue:  tender.EstimatedValue,
		})
		if err != nil {
			return fmt.Errorf("pricing analysis failed: %w", err)
		}
		pricingAnalysis = analysis
		return nil
	})

	if err := g.Wait(); err != nil {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, db.StatusFailed)
		}
		return nil, err
	}

	if opts.Verbose && pricingAnalysis != nil {
		printer.PrintPricingBreakdown(&pricingAnalysis.Breakdown)
		printer.PrintScenarios(pricingAnalysis)
	}
	emitProgress(&opts, db.StepPricingAnalysis, db.CategoryPricing, "Priced selected product", pricingAnalysis)

	response := &types.TenderResponse{
		TenderID:  tender.ID,
		Technical: technical,
		Pricing:   pricingAnalysis,
	}

	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepPricingAnalysis, db.CategoryPricing, pricingAnalysis)
		_ = database.SaveArtifact(ctx, runID, db.StepTenderResponse, db.CategoryResponse, response)
		_ = database.CompleteRun(ctx, runID, db.StatusCompleted)
	}
	emitProgress(&opts, db.StepTenderResponse, db.CategoryResponse, "Assembled tender response", response)

	return response, nil
}

// LoadTender reads and parses a tender requirement file.
func LoadTender(path string) (*types.Tender, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tender file %s: %w", path, err)
	}
	var tender types.Tender
	if err := json.Unmarshal(data, &tender); err != nil {
		return nil, fmt.Errorf("failed to parse tender JSON: %w", err)
	}
	return &tender, nil
}

// toMatchResults rebuilds printable match results from recommendations.
func toMatchResults(recs []types.ProductRecommendation) []types.SpecMatchResult {
	results := make([]types.SpecMatchResult, 0, len(recs))
	for _, rec := range recs {
		results = append(results, types.SpecMatchResult{
			Product: types.Product{
				SKU:            rec.SKU,
				Name:           rec.ProductName,
				Specifications: rec.Specifications,
				Certifications: rec.Certifications,
				PricePerMeter:  rec.PricePerMeter,
			},
			MatchScore:     rec.MatchScore,
			MatchedSpecs:   rec.MatchedSpecs,
			UnmatchedSpecs: rec.UnmatchedSpecs,
			Strengths:      rec.Strengths,
			Gaps:           rec.Gaps,
		})
	}
	return results
}
