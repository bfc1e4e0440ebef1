package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/robinvdvleuten/invoicecheck/invoice"
	"github.com/robinvdvleuten/invoicecheck/pipeline"
	"github.com/robinvdvleuten/invoicecheck/report"
)

// ReportResponse is the JSON response structure for the report endpoint.
// Columns carries the order the file writers would use, so the dashboard
// table matches the CSV.
type ReportResponse struct {
	Columns []string         `json:"columns"`
	Rows    []invoice.Record `json:"rows"`
}

// SummaryResponse is the JSON response structure for the summary endpoint.
type SummaryResponse struct {
	pipeline.Summary

	LoadFailures int       `json:"load_failures"`
	GeneratedAt  time.Time `json:"generated_at"`
	Version      string    `json:"version,omitempty"`
	CommitSHA    string    `json:"commit_sha,omitempty"`
}

// handleGetReport handles GET requests to /api/report.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeJSONResponse(w, ReportResponse{
		Columns: report.Columns(s.rows),
		Rows:    s.rows,
	})
}

// handleGetSummary handles GET requests to /api/summary.
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeJSONResponse(w, SummaryResponse{
		Summary:      s.summary,
		LoadFailures: s.loadFailures,
		GeneratedAt:  s.generatedAt,
		Version:      s.Version,
		CommitSHA:    s.CommitSHA,
	})
}

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
