package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-claims/backend/internal/allowance"
	"github.com/pkordes/trip-claims/backend/internal/domain"
	"github.com/pkordes/trip-claims/backend/internal/handler"
)

// Hand-written test doubles for the servicer interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	create func(ctx context.Context, userID uuid.UUID, targetMonth string, raw allowance.RawInput) (domain.Trip, error)
	update func(ctx context.Context, userID uuid.UUID, targetMonth string, tripID uuid.UUID, raw allowance.RawInput) (domain.Trip, error)
	delete func(ctx context.Context, userID uuid.UUID, targetMonth string, tripID uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, userID uuid.UUID, targetMonth string, raw allowance.RawInput) (domain.Trip, error) {
	return m.create(ctx, userID, targetMonth, raw)
}
func (m *mockTripServicer) Update(ctx context.Context, userID uuid.UUID, targetMonth string, tripID uuid.UUID, raw allowance.RawInput) (domain.Trip, error) {
	return m.update(ctx, userID, targetMonth, tripID, raw)
}
func (m *mockTripServicer) Delete(ctx context.Context, userID uuid.UUID, targetMonth string, tripID uuid.UUID) error {
	return m.delete(ctx, userID, targetMonth, tripID)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockReportServicer struct {
	open              func(ctx context.Context, userID uuid.UUID, targetMonth string) (domain.MonthlyReport, []domain.Trip, error)
	listWithSummaries func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.ReportSummary, int64, error)
}

func (m *mockReportServicer) Open(ctx context.Context, userID uuid.UUID, targetMonth string) (domain.MonthlyReport, []domain.Trip, error) {
	return m.open(ctx, userID, targetMonth)
}
func (m *mockReportServicer) ListWithSummaries(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.ReportSummary, int64, error) {
	return m.listWithSummaries(ctx, userID, p)
}

var _ handler.ReportServicer = (*mockReportServicer)(nil)

type mockClaimServicer struct {
	buildForMonth func(ctx context.Context, userID uuid.UUID, targetMonth string, variant domain.ClaimVariant) (domain.ClaimDocument, error)
}

func (m *mockClaimServicer) BuildForMonth(ctx context.Context, userID uuid.UUID, targetMonth string, variant domain.ClaimVariant) (domain.ClaimDocument, error) {
	return m.buildForMonth(ctx, userID, targetMonth, variant)
}

var _ handler.ClaimServicer = (*mockClaimServicer)(nil)

type mockProfileServicer struct {
	get    func(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	update func(ctx context.Context, userID uuid.UUID, displayName, department string) (domain.Profile, error)
}

func (m *mockProfileServicer) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	return m.get(ctx, userID)
}
func (m *mockProfileServicer) Update(ctx context.Context, userID uuid.UUID, displayName, department string) (domain.Profile, error) {
	return m.update(ctx, userID, displayName, department)
}

var _ handler.ProfileServicer = (*mockProfileServicer)(nil)

type mockRouteServicer struct {
	create func(ctx context.Context, userID uuid.UUID, route domain.TransportRoute) (domain.TransportRoute, error)
	list   func(ctx context.Context, userID uuid.UUID) ([]domain.TransportRoute, error)
	delete func(ctx context.Context, userID, routeID uuid.UUID) error
}

func (m *mockRouteServicer) Create(ctx context.Context, userID uuid.UUID, route domain.TransportRoute) (domain.TransportRoute, error) {
	return m.create(ctx, userID, route)
}
func (m *mockRouteServicer) List(ctx context.Context, userID uuid.UUID) ([]domain.TransportRoute, error) {
	return m.list(ctx, userID)
}
func (m *mockRouteServicer) Delete(ctx context.Context, userID, routeID uuid.UUID) error {
	return m.delete(ctx, userID, routeID)
}

var _ handler.RouteServicer = (*mockRouteServicer)(nil)

// ---- request helpers -------------------------------------------------------

// serve routes req through a Server built from the given mocks and returns
// the recorded response. Nil mocks are fine for endpoints the test never hits.
func serve(t *testing.T, srv *handler.Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

// authedRequest builds a request carrying the identity header RequireUser expects.
func authedRequest(t *testing.T, method, target string, userID uuid.UUID, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("X-User-ID", userID.String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// decodeBody unmarshals the recorded JSON body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
