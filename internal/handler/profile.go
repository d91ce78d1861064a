package handler

import (
	"encoding/json"
	"net/http"
)

// profileRequest is the settings form payload.
type profileRequest struct {
	DisplayName string `json:"display_name"`
	Department  string `json:"department"`
}

// GetProfile handles GET /profile.
// A user who has never saved settings gets empty fields, not a 404.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.Get(r.Context(), mustUserID(r))
	if err != nil {
		writeDomainError(w, err, "profile not found")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	profile, err := s.profiles.Update(r.Context(), mustUserID(r), req.DisplayName, req.Department)
	if err != nil {
		writeDomainError(w, err, "profile not found")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
