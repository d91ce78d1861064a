package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-claims/backend/internal/domain"
	"github.com/pkordes/trip-claims/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.

type mockReportRepo struct {
	getOrCreate func(ctx context.Context, userID uuid.UUID, targetMonth string) (domain.MonthlyReport, error)
	getByID     func(ctx context.Context, userID, reportID uuid.UUID) (domain.MonthlyReport, error)
	listByUser  func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.MonthlyReport, int64, error)
}

func (m *mockReportRepo) GetOrCreate(ctx context.Context, userID uuid.UUID, targetMonth string) (domain.MonthlyReport, error) {
	return m.getOrCreate(ctx, userID, targetMonth)
}
func (m *mockReportRepo) GetByID(ctx context.Context, userID, reportID uuid.UUID) (domain.MonthlyReport, error) {
	return m.getByID(ctx, userID, reportID)
}
func (m *mockReportRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.MonthlyReport, int64, error) {
	return m.listByUser(ctx, userID, p)
}

var _ repo.ReportRepo = (*mockReportRepo)(nil)

type mockTripRepo struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, reportID, tripID uuid.UUID) (domain.Trip, error)
	listByReport func(ctx context.Context, reportID uuid.UUID) ([]domain.Trip, error)
	update       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete       func(ctx context.Context, reportID, tripID uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, reportID, tripID uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, reportID, tripID)
}
func (m *mockTripRepo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Trip, error) {
	return m.listByReport(ctx, reportID)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, reportID, tripID uuid.UUID) error {
	return m.delete(ctx, reportID, tripID)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockProfileRepo struct {
	get    func(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	upsert func(ctx context.Context, profile domain.Profile) (domain.Profile, error)
}

func (m *mockProfileRepo) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	return m.get(ctx, userID)
}
func (m *mockProfileRepo) Upsert(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	return m.upsert(ctx, profile)
}

var _ repo.ProfileRepo = (*mockProfileRepo)(nil)

type mockRouteRepo struct {
	create     func(ctx context.Context, route domain.TransportRoute) (domain.TransportRoute, error)
	listByUser func(ctx context.Context, userID uuid.UUID) ([]domain.TransportRoute, error)
	delete     func(ctx context.Context, userID, routeID uuid.UUID) error
}

func (m *mockRouteRepo) Create(ctx context.Context, route domain.TransportRoute) (domain.TransportRoute, error) {
	return m.create(ctx, route)
}
func (m *mockRouteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TransportRoute, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockRouteRepo) Delete(ctx context.Context, userID, routeID uuid.UUID) error {
	return m.delete(ctx, userID, routeID)
}

var _ repo.RouteRepo = (*mockRouteRepo)(nil)

// fixedReportRepo returns a repo whose GetOrCreate always yields the same report.
func fixedReportRepo(rep domain.MonthlyReport) *mockReportRepo {
	return &mockReportRepo{
		getOrCreate: func(_ context.Context, _ uuid.UUID, _ string) (domain.MonthlyReport, error) {
			return rep, nil
		},
	}
}

// echoTripRepo echoes whatever it receives back — useful for Create/Update
// tests that only care about validation and derivation, not what the DB returns.
func echoTripRepo() *mockTripRepo {
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
		update: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
	}
}
