package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-claims/backend/internal/allowance"
	"github.com/pkordes/trip-claims/backend/internal/domain"
	"github.com/pkordes/trip-claims/backend/internal/repo"
)

// ReportService implements business logic for MonthlyReport operations:
// opening a month (get-or-create plus its trips) and the past-reports listing
// with per-report totals.
type ReportService struct {
	reports repo.ReportRepo
	trips   repo.TripRepo
}

// NewReportService constructs a ReportService backed by the provided repos.
func NewReportService(reports repo.ReportRepo, trips repo.TripRepo) *ReportService {
	return &ReportService{reports: reports, trips: trips}
}

// Open returns the user's report for targetMonth together with its trips in
// date_from ascending order, creating an empty report on first visit.
// The trips slice is never nil, so callers can safely range over it.
func (s *ReportService) Open(ctx context.Context, userID uuid.UUID, targetMonth string) (domain.MonthlyReport, []domain.Trip, error) {
	if !domain.ValidMonthKey(targetMonth) {
		return domain.MonthlyReport{}, nil, fmt.Errorf("%w: target month %q is not YYYY-MM", domain.ErrValidation, targetMonth)
	}

	rep, err := s.reports.GetOrCreate(ctx, userID, targetMonth)
	if err != nil {
		return domain.MonthlyReport{}, nil, fmt.Errorf("service.ReportService.Open: %w", err)
	}

	trips, err := s.trips.ListByReport(ctx, rep.ID)
	if err != nil {
		return domain.MonthlyReport{}, nil, fmt.Errorf("service.ReportService.Open: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}

	return rep, trips, nil
}

// ListWithSummaries returns a page of the user's reports, newest month first,
// each with trip count and totals aggregated on demand (reports store no
// numeric fields of their own). The slice is never nil.
func (s *ReportService) ListWithSummaries(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.ReportSummary, int64, error) {
	reports, total, err := s.reports.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ReportService.ListWithSummaries: %w", err)
	}

	summaries := make([]domain.ReportSummary, 0, len(reports))
	for _, rep := range reports {
		trips, err := s.trips.ListByReport(ctx, rep.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("service.ReportService.ListWithSummaries: %w", err)
		}
		sum := allowance.Aggregate(trips)
		summaries = append(summaries, domain.ReportSummary{
			Report:         rep,
			TripCount:      sum.Count,
			TotalTransport: sum.TotalTransport,
			TotalAllowance: sum.TotalAllowance,
			GrandTotal:     sum.GrandTotal,
		})
	}

	return summaries, total, nil
}
