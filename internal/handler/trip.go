package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-claims/backend/internal/allowance"
)

// tripRequest is the trip form payload. Fares arrive as strings exactly as
// typed into the form; coercion and all validation happen in the allowance
// engine, so the handler never has to reason about them.
type tripRequest struct {
	Destination    string `json:"destination"`
	DateFrom       string `json:"date_from"` // "2006-01-02"
	DateTo         string `json:"date_to"`
	OutboundMethod string `json:"outbound_method"`
	OutboundFare   string `json:"outbound_fare"`
	ReturnMethod   string `json:"return_method"`
	ReturnFare     string `json:"return_fare"`
}

// CreateTrip handles POST /reports/{month}/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeTripRequest(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.Create(r.Context(), mustUserID(r), chi.URLParam(r, "month"), raw)
	if err != nil {
		writeDomainError(w, err, "report not found")
		return
	}

	writeJSON(w, http.StatusCreated, trip)
}

// UpdateTrip handles PUT /reports/{month}/trips/{tripID}.
// An update is a full re-submit: all fields are replaced and every derived
// field is recomputed.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeBadRequest(w, "malformed trip id")
		return
	}

	raw, ok := decodeTripRequest(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.Update(r.Context(), mustUserID(r), chi.URLParam(r, "month"), tripID, raw)
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /reports/{month}/trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeBadRequest(w, "malformed trip id")
		return
	}

	if err := s.trips.Delete(r.Context(), mustUserID(r), chi.URLParam(r, "month"), tripID); err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeTripRequest reads the JSON body into the allowance engine's raw input.
// Returns ok=false after writing the error response.
func decodeTripRequest(w http.ResponseWriter, r *http.Request) (allowance.RawInput, bool) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is required")
		return allowance.RawInput{}, false
	}
	return allowance.RawInput{
		Destination:    req.Destination,
		DateFrom:       req.DateFrom,
		DateTo:         req.DateTo,
		OutboundMethod: req.OutboundMethod,
		OutboundFare:   req.OutboundFare,
		ReturnMethod:   req.ReturnMethod,
		ReturnFare:     req.ReturnFare,
	}, true
}
