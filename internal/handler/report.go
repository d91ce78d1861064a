package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-claims/backend/internal/domain"
)

// reportResponse is the payload of GET /reports/{month}: the report plus its
// trips in date_from ascending order.
type reportResponse struct {
	Report domain.MonthlyReport `json:"report"`
	Trips  []domain.Trip        `json:"trips"`
}

// reportListResponse is the payload of GET /reports.
type reportListResponse struct {
	Data       []domain.ReportSummary `json:"data"`
	Pagination pagination             `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// OpenReport handles GET /reports/{month}.
// First visit to a month creates its empty report (get-or-create semantics).
func (s *Server) OpenReport(w http.ResponseWriter, r *http.Request) {
	rep, trips, err := s.reports.Open(r.Context(), mustUserID(r), chi.URLParam(r, "month"))
	if err != nil {
		writeDomainError(w, err, "report not found")
		return
	}

	writeJSON(w, http.StatusOK, reportResponse{Report: rep, Trips: trips})
}

// ListReports handles GET /reports — the past-reports screen.
// Reports come newest month first, each with on-demand totals.
// Supports ?page= and ?limit= query parameters.
func (s *Server) ListReports(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	summaries, total, err := s.reports.ListWithSummaries(r.Context(), mustUserID(r), params)
	if err != nil {
		writeDomainError(w, err, "reports not found")
		return
	}

	writeJSON(w, http.StatusOK, reportListResponse{
		Data: summaries,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// queryInt parses an optional integer query parameter, nil when absent or
// malformed — NewPaginationParams applies the defaults.
func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
