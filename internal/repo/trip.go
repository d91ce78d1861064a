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

// TripRepo defines the persistence operations for Trips.
// Single-record reads and writes are scoped by reportID to enforce ownership:
// a trip can only be touched through the report it was filed under.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID, scoped to the given reportID.
	// Returns domain.ErrNotFound if no trip with that ID exists under that report.
	GetByID(ctx context.Context, reportID, tripID uuid.UUID) (domain.Trip, error)

	// ListByReport returns all trips for a report ordered by date_from ascending.
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Trip, error)

	// Update overwrites all mutable fields of a trip (including the derived
	// columns) and returns the updated record, scoped to the given reportID.
	// Returns domain.ErrNotFound if no trip with that ID exists under that report.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID, scoped to the given reportID.
	// Returns domain.ErrNotFound if no trip with that ID exists under that report.
	Delete(ctx context.Context, reportID, tripID uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, report_id, user_id, destination, date_from, date_to,
		outbound_method, outbound_fare, return_method, return_fare,
		nights, trip_type, allowance, transport_cost, total_cost,
		created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (report_id, user_id, destination, date_from, date_to,
			outbound_method, outbound_fare, return_method, return_fare,
			nights, trip_type, allowance, transport_cost, total_cost)
		VALUES (@report_id, @user_id, @destination, @date_from, @date_to,
			@outbound_method, @outbound_fare, @return_method, @return_fare,
			@nights, @trip_type, @allowance, @transport_cost, @total_cost)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, reportID, tripID uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = @id AND report_id = @report_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tripID, "report_id": reportID})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByReport returns the report's trips in date_from ascending order — the
// order the claim builder expects and preserves.
func (r *pgTripRepo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE report_id = @report_id
		ORDER BY date_from ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"report_id": reportID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByReport: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListByReport: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByReport: rows: %w", err)
	}

	return trips, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination     = @destination,
		    date_from       = @date_from,
		    date_to         = @date_to,
		    outbound_method = @outbound_method,
		    outbound_fare   = @outbound_fare,
		    return_method   = @return_method,
		    return_fare     = @return_fare,
		    nights          = @nights,
		    trip_type       = @trip_type,
		    allowance       = @allowance,
		    transport_cost  = @transport_cost,
		    total_cost      = @total_cost,
		    updated_at      = now()
		WHERE id = @id AND report_id = @report_id
		RETURNING ` + tripColumns

	args := tripArgs(trip)
	args["id"] = trip.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, reportID, tripID uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id AND report_id = @report_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": tripID, "report_id": reportID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs maps the writable trip fields to named SQL arguments.
func tripArgs(t domain.Trip) pgx.NamedArgs {
	return pgx.NamedArgs{
		"report_id":       t.ReportID,
		"user_id":         t.UserID,
		"destination":     t.Destination,
		"date_from":       t.DateFrom,
		"date_to":         t.DateTo,
		"outbound_method": t.OutboundMethod,
		"outbound_fare":   t.OutboundFare,
		"return_method":   t.ReturnMethod,
		"return_fare":     t.ReturnFare,
		"nights":          t.Nights,
		"trip_type":       t.TripType,
		"allowance":       t.Allowance,
		"transport_cost":  t.TransportCost,
		"total_cost":      t.TotalCost,
	}
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and date column conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t        domain.Trip
		id       pgtype.UUID
		reportID pgtype.UUID
		userID   pgtype.UUID
		dateFrom pgtype.Date
		dateTo   pgtype.Date
	)

	err := s.Scan(&id, &reportID, &userID, &t.Destination, &dateFrom, &dateTo,
		&t.OutboundMethod, &t.OutboundFare, &t.ReturnMethod, &t.ReturnFare,
		&t.Nights, &t.TripType, &t.Allowance, &t.TransportCost, &t.TotalCost,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.ReportID = uuid.UUID(reportID.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	t.DateFrom = dateFrom.Time
	t.DateTo = dateTo.Time

	return t, nil
}
