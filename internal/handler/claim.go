// Package handler — claim.go implements GET /reports/{month}/claim.
// Returns the month's claim document as JSON, or as a CSV download via
// ?format=csv for users who post-process the sheet in a spreadsheet.
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-claims/backend/internal/domain"
)

// simpleCSVHeaders are the CSV columns of the simple claim layout.
var simpleCSVHeaders = []string{
	"no", "destination", "date_from", "date_to", "trip_type",
	"transport_cost", "allowance", "total_cost",
}

// detailedCSVHeaders add the per-leg method and fare columns.
var detailedCSVHeaders = []string{
	"no", "destination", "date_from", "date_to", "trip_type",
	"outbound_method", "outbound_fare", "return_method", "return_fare",
	"transport_cost", "allowance", "total_cost",
}

// GetClaim handles GET /reports/{month}/claim.
// ?variant=simple|detailed selects the layout (default detailed);
// ?format=csv returns a CSV download instead of JSON.
func (s *Server) GetClaim(w http.ResponseWriter, r *http.Request) {
	variant := domain.ClaimDetailed
	if v := r.URL.Query().Get("variant"); v != "" {
		variant = domain.ClaimVariant(v)
	}

	doc, err := s.claims.BuildForMonth(r.Context(), mustUserID(r), chi.URLParam(r, "month"), variant)
	if err != nil {
		writeDomainError(w, err, "report not found")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeClaimCSV(w, doc)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// writeClaimCSV encodes the document as CSV: header, one record per row, and
// a final totals record. Amounts stay raw integers (no ¥ formatting) so the
// file loads cleanly into a spreadsheet.
func writeClaimCSV(w http.ResponseWriter, doc domain.ClaimDocument) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	headers := simpleCSVHeaders
	if doc.Variant == domain.ClaimDetailed {
		headers = detailedCSVHeaders
	}

	//nolint:errcheck — csv.Writer over bytes.Buffer never returns an error.
	cw.Write(headers)
	for _, row := range doc.Rows {
		//nolint:errcheck
		cw.Write(claimRowToCSVRecord(row, doc.Variant))
	}
	//nolint:errcheck
	cw.Write(totalsCSVRecord(doc))
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="claim-`+doc.TargetMonth+`.csv"`)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// claimRowToCSVRecord flattens one line item to a CSV record.
func claimRowToCSVRecord(row domain.ClaimRow, variant domain.ClaimVariant) []string {
	rec := []string{
		strconv.Itoa(row.No),
		row.Destination,
		row.DateFrom,
		row.DateTo,
		row.TripType,
	}
	if variant == domain.ClaimDetailed {
		rec = append(rec,
			row.OutboundMethod,
			strconv.FormatInt(row.OutboundFare, 10),
			row.ReturnMethod,
			strconv.FormatInt(row.ReturnFare, 10),
		)
	}
	return append(rec,
		strconv.FormatInt(row.TransportCost, 10),
		strconv.FormatInt(row.Allowance, 10),
		strconv.FormatInt(row.TotalCost, 10),
	)
}

// totalsCSVRecord is the footer record, aligned to the same columns.
func totalsCSVRecord(doc domain.ClaimDocument) []string {
	rec := []string{"", "", "", "", "合計"}
	if doc.Variant == domain.ClaimDetailed {
		rec = append(rec, "", "", "", "")
	}
	return append(rec,
		strconv.FormatInt(doc.Totals.TotalTransport, 10),
		strconv.FormatInt(doc.Totals.TotalAllowance, 10),
		strconv.FormatInt(doc.Totals.GrandTotal, 10),
	)
}
