package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-claims/backend/internal/domain"
)

// RouteRepo defines the persistence operations for TransportRoutes.
// Deletes are scoped by userID so one user cannot remove another's shortcuts.
type RouteRepo interface {
	// Create inserts a new route and returns the persisted record.
	Create(ctx context.Context, route domain.TransportRoute) (domain.TransportRoute, error)

	// ListByUser returns all routes for a user ordered by name.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TransportRoute, error)

	// Delete removes a route by ID, scoped to the given userID.
	// Returns domain.ErrNotFound if no route with that ID belongs to that user.
	Delete(ctx context.Context, userID, routeID uuid.UUID) error
}

// pgRouteRepo is the Postgres implementation of RouteRepo.
type pgRouteRepo struct {
	db db
}

// NewRouteRepo constructs a RouteRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRouteRepo(db db) RouteRepo {
	return &pgRouteRepo{db: db}
}

func (r *pgRouteRepo) Create(ctx context.Context, route domain.TransportRoute) (domain.TransportRoute, error) {
	const q = `
		INSERT INTO transport_routes (user_id, name, method, fare)
		VALUES (@user_id, @name, @method, @fare)
		RETURNING id, user_id, name, method, fare, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"user_id": route.UserID,
		"name":    route.Name,
		"method":  route.Method,
		"fare":    route.Fare,
	})
	result, err := scanRoute(row)
	if err != nil {
		return domain.TransportRoute{}, fmt.Errorf("repo.RouteRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgRouteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TransportRoute, error) {
	const q = `
		SELECT id, user_id, name, method, fare, created_at
		FROM transport_routes
		WHERE user_id = @user_id
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.RouteRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var routes []domain.TransportRoute
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RouteRepo.ListByUser: scan: %w", err)
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RouteRepo.ListByUser: rows: %w", err)
	}

	return routes, nil
}

func (r *pgRouteRepo) Delete(ctx context.Context, userID, routeID uuid.UUID) error {
	const q = `DELETE FROM transport_routes WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": routeID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.RouteRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RouteRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanRoute maps a single database row into a domain.TransportRoute.
func scanRoute(s scanner) (domain.TransportRoute, error) {
	var (
		rt     domain.TransportRoute
		id     pgtype.UUID
		userID pgtype.UUID
	)

	err := s.Scan(&id, &userID, &rt.Name, &rt.Method, &rt.Fare, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TransportRoute{}, domain.ErrNotFound
		}
		return domain.TransportRoute{}, err
	}

	rt.ID = uuid.UUID(id.Bytes)
	rt.UserID = uuid.UUID(userID.Bytes)

	return rt, nil
}
