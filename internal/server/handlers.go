package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/arvind/rfp-responder/internal/db"
	"github.com/arvind/rfp-responder/internal/pipeline"
	"github.com/arvind/rfp-responder/internal/types"
)

// MatchRequest represents the request body for /match
type MatchRequest struct {
	Specifications types.RequirementSpec `json:"specifications"`
	TopN           int                   `json:"top_n,omitempty" validate:"gte=0"`
}

// MatchResponse represents the response for /match
type MatchResponse struct {
	Matches []types.SpecMatchResult `json:"matches"`
}

// PriceRequest represents the request body for /price
type PriceRequest struct {
	SKU              string   `json:"sku" validate:"required"`
	Quantity         int      `json:"quantity" validate:"gt=0"`
	TestsRequired    []string `json:"tests_required,omitempty"`
	ServicesRequired []string `json:"services_required,omitempty"`
}

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Tender types.Tender `json:"tender"`
	TopN   int          `json:"top_n,omitempty" validate:"gte=0"`
}

// RunsResponse represents the response for /runs
type RunsResponse struct {
	Runs []db.RunSummary `json:"runs"`
}

// ArtifactsResponse represents the response for /runs/{id}/artifacts
type ArtifactsResponse struct {
	RunID     string        `json:"run_id"`
	Artifacts []db.Artifact `json:"artifacts"`
}

// handleMatch scores the catalog against a requirement spec
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	topN := req.TopN
	if topN == 0 {
		topN = 3
	}

	matches := s.matcher.FindTopMatches(req.Specifications, s.catalog.Products(), topN)
	s.jsonResponse(w, http.StatusOK, MatchResponse{Matches: matches})
}

// handlePrice calculates the full cost breakdown for a SKU
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	calc, err := s.calculator.CalculatePrice(req.SKU, req.Quantity, req.TestsRequired, req.ServicesRequired)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, calc)
}

// handleAnalyze runs the full tender response pipeline synchronously
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if req.Tender.ID == "" {
		s.errorResponse(w, http.StatusBadRequest, "tender.id is required")
		return
	}
	if req.Tender.Quantity <= 0 {
		s.errorResponse(w, http.StatusBadRequest, "tender.quantity must be positive")
		return
	}

	log.Printf("Starting tender analysis for %s", req.Tender.ID)

	response, err := pipeline.Run(r.Context(), pipeline.Options{
		Tender:       &req.Tender,
		ProductsPath: s.productsPath,
		PricingPath:  s.pricingPath,
		TopN:         req.TopN,
		DatabaseURL:  s.databaseURL,
	})
	if err != nil {
		log.Printf("Tender analysis failed for %s: %v", req.Tender.ID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleListRuns lists recent persisted analysis runs
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runs, err := s.db.ListRuns(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list runs: "+err.Error())
		return
	}
	if runs == nil {
		runs = []db.RunSummary{}
	}
	s.jsonResponse(w, http.StatusOK, RunsResponse{Runs: runs})
}

// handleRunArtifacts returns all artifacts persisted for a run
func (s *Server) handleRunArtifacts(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	idStr := r.PathValue("id")
	runID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID: "+idStr)
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch run: "+err.Error())
		return
	}
	if run == nil {
		nf := &ErrRunNotFound{ID: idStr}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	artifacts, err := s.db.ListArtifacts(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list artifacts: "+err.Error())
		return
	}
	if artifacts == nil {
		artifacts = []db.Artifact{}
	}
	s.jsonResponse(w, http.StatusOK, ArtifactsResponse{RunID: idStr, Artifacts: artifacts})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
