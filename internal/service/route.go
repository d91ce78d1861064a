package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-claims/backend/internal/domain"
	"github.com/pkordes/trip-claims/backend/internal/repo"
)

// RouteService implements business logic for TransportRoute shortcuts.
type RouteService struct {
	routes repo.RouteRepo
}

// NewRouteService constructs a RouteService backed by the provided repo.
func NewRouteService(routes repo.RouteRepo) *RouteService {
	return &RouteService{routes: routes}
}

// Create validates and saves a new route shortcut for the user.
// Returns domain.ErrValidation when the name is blank or the fare is negative.
func (s *RouteService) Create(ctx context.Context, userID uuid.UUID, route domain.TransportRoute) (domain.TransportRoute, error) {
	route.UserID = userID
	route.Name = strings.TrimSpace(route.Name)
	route.Method = strings.TrimSpace(route.Method)

	if route.Name == "" {
		return domain.TransportRoute{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if route.Fare < 0 {
		return domain.TransportRoute{}, fmt.Errorf("%w: fare must not be negative", domain.ErrValidation)
	}

	result, err := s.routes.Create(ctx, route)
	if err != nil {
		return domain.TransportRoute{}, fmt.Errorf("service.RouteService.Create: %w", err)
	}
	return result, nil
}

// List returns the user's saved routes ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RouteService) List(ctx context.Context, userID uuid.UUID) ([]domain.TransportRoute, error) {
	routes, err := s.routes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.RouteService.List: %w", err)
	}
	if routes == nil {
		return []domain.TransportRoute{}, nil
	}
	return routes, nil
}

// Delete removes one of the user's routes.
// Returns domain.ErrNotFound if the route does not exist or is not theirs.
func (s *RouteService) Delete(ctx context.Context, userID, routeID uuid.UUID) error {
	if err := s.routes.Delete(ctx, userID, routeID); err != nil {
		return fmt.Errorf("service.RouteService.Delete: %w", err)
	}
	return nil
}
