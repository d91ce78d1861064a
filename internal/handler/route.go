package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-claims/backend/internal/domain"
)

// routeRequest is the saved-route form payload. Fare is numeric here (unlike
// the trip form) because the route picker is a structured widget, not a free
// text field.
type routeRequest struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	Fare   int64  `json:"fare"`
}

// ListRoutes handles GET /routes.
func (s *Server) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := s.routes.List(r.Context(), mustUserID(r))
	if err != nil {
		writeDomainError(w, err, "routes not found")
		return
	}

	writeJSON(w, http.StatusOK, routes)
}

// CreateRoute handles POST /routes.
func (s *Server) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	route, err := s.routes.Create(r.Context(), mustUserID(r), domain.TransportRoute{
		Name:   req.Name,
		Method: req.Method,
		Fare:   req.Fare,
	})
	if err != nil {
		writeDomainError(w, err, "route not found")
		return
	}

	writeJSON(w, http.StatusCreated, route)
}

// DeleteRoute handles DELETE /routes/{routeID}.
func (s *Server) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	routeID, err := uuid.Parse(chi.URLParam(r, "routeID"))
	if err != nil {
		writeBadRequest(w, "malformed route id")
		return
	}

	if err := s.routes.Delete(r.Context(), mustUserID(r), routeID); err != nil {
		writeDomainError(w, err, "route not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
