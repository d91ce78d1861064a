package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ctxKey is unexported so no other package can forge or collide with our
// context keys.
type ctxKey int

const userIDKey ctxKey = iota

// userIDHeader carries the authenticated user's ID, set by the identity
// proxy in front of this service. Authentication itself is the proxy's job —
// this service only trusts and parses the header.
const userIDHeader = "X-User-ID"

// RequireUser rejects requests without a valid user ID header and stores the
// parsed UUID in the request context for handlers to read via UserID.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			writeUnauthorized(w, "missing user identity")
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			writeUnauthorized(w, "malformed user identity")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error":{"code":"unauthorized","message":%q}}`, message)
}

// UserID returns the authenticated user's ID stored by RequireUser.
// The boolean is false on requests that did not pass through RequireUser.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
