// Package handler implements the HTTP handlers for the trip claims API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (health.go, trip.go, report.go, claim.go, profile.go, route.go) but
// all share the same Server struct so they can access its dependencies.
//
// Defining the servicer interfaces here (in the consumer package) follows the
// Go convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-claims/backend/internal/allowance"
	"github.com/pkordes/trip-claims/backend/internal/domain"
	"github.com/pkordes/trip-claims/backend/internal/middleware"
)

// TripServicer defines the business operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, userID uuid.UUID, targetMonth string, raw allowance.RawInput) (domain.Trip, error)
	Update(ctx context.Context, userID uuid.UUID, targetMonth string, tripID uuid.UUID, raw allowance.RawInput) (domain.Trip, error)
	Delete(ctx context.Context, userID uuid.UUID, targetMonth string, tripID uuid.UUID) error
}

// ReportServicer defines the business operations the report handlers depend on.
type ReportServicer interface {
	Open(ctx context.Context, userID uuid.UUID, targetMonth string) (domain.MonthlyReport, []domain.Trip, error)
	ListWithSummaries(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.ReportSummary, int64, error)
}

// ClaimServicer defines the claim document operation the claim handler depends on.
type ClaimServicer interface {
	BuildForMonth(ctx context.Context, userID uuid.UUID, targetMonth string, variant domain.ClaimVariant) (domain.ClaimDocument, error)
}

// ProfileServicer defines the settings operations the profile handlers depend on.
type ProfileServicer interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, displayName, department string) (domain.Profile, error)
}

// RouteServicer defines the business operations the route handlers depend on.
type RouteServicer interface {
	Create(ctx context.Context, userID uuid.UUID, route domain.TransportRoute) (domain.TransportRoute, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.TransportRoute, error)
	Delete(ctx context.Context, userID, routeID uuid.UUID) error
}

// Server holds the service dependencies for all API endpoints.
type Server struct {
	trips    TripServicer
	reports  ReportServicer
	claims   ClaimServicer
	profiles ProfileServicer
	routes   RouteServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, reports ReportServicer, claims ClaimServicer, profiles ProfileServicer, routes RouteServicer) *Server {
	return &Server{trips: trips, reports: reports, claims: claims, profiles: profiles, routes: routes}
}

// Routes returns the API router. The health check is public; everything else
// requires the identity header set by the auth proxy.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Get("/profile", s.GetProfile)
		r.Put("/profile", s.UpdateProfile)

		r.Get("/reports", s.ListReports)
		r.Route("/reports/{month}", func(r chi.Router) {
			r.Get("/", s.OpenReport)
			r.Get("/claim", s.GetClaim)
			r.Post("/trips", s.CreateTrip)
			r.Put("/trips/{tripID}", s.UpdateTrip)
			r.Delete("/trips/{tripID}", s.DeleteTrip)
		})

		r.Get("/routes", s.ListRoutes)
		r.Post("/routes", s.CreateRoute)
		r.Delete("/routes/{routeID}", s.DeleteRoute)
	})

	return r
}

// mustUserID returns the authenticated user ID from the context.
// Handlers behind RequireUser can rely on it being present; a missing ID
// means broken wiring, which the Recoverer middleware surfaces as a 500.
func mustUserID(r *http.Request) uuid.UUID {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		panic("handler: no user ID in context; is RequireUser wired?")
	}
	return id
}
