package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds a user's display settings. DisplayName is printed as the
// claimant on the expense claim sheet; Department appears in the app header.
// Both may be empty until the user fills in the settings form.
type Profile struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Department  string    `json:"department"`
	UpdatedAt   time.Time `json:"updated_at"`
}
