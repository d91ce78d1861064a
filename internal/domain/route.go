package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransportRoute is a user-saved shortcut of transport method + fare,
// used to prefill the outbound/return fields of the trip form.
// Routes are user-created and user-deleted, never derived from trips.
type TransportRoute struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`   // e.g. "東京→大阪 新幹線"
	Method    string    `json:"method"` // e.g. "新幹線"
	Fare      int64     `json:"fare"`   // integer yen, never negative
	CreatedAt time.Time `json:"created_at"`
}
