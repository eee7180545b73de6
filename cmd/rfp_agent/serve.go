package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arvind/rfp-responder/internal/server"
)

var (
	servePort     int
	serveProducts string
	servePricing  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for matching, pricing and full tender analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveProducts, "products", "", "Path to product catalog JSON file (defaults to bundled catalog)")
	serveCmd.Flags().StringVar(&servePricing, "pricing", "", "Path to pricing data JSON file (defaults to bundled data)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Database is optional; without it the run-history endpoints return 503
	databaseURL := os.Getenv("DATABASE_URL")

	cfg := server.Config{
		Port:         servePort,
		DatabaseURL:  databaseURL,
		ProductsPath: serveProducts,
		PricingPath:  servePricing,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
