// Package service contains the business logic for the trip claims API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-claims/backend/internal/allowance"
	"github.com/pkordes/trip-claims/backend/internal/domain"
	"github.com/pkordes/trip-claims/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// Every write runs the same pipeline: validate the raw input, check the trip
// belongs in the report's month, derive the allowance fields, persist.
// It holds the report repo because trips are always addressed through the
// (user, month) report they are filed under.
type TripService struct {
	reports repo.ReportRepo
	trips   repo.TripRepo
	policy  allowance.Policy
}

// NewTripService constructs a TripService backed by the provided repos,
// applying the given allowance policy to all derivations.
func NewTripService(reports repo.ReportRepo, trips repo.TripRepo, policy allowance.Policy) *TripService {
	return &TripService{reports: reports, trips: trips, policy: policy}
}

// Create validates raw form input and files a new trip under the user's
// report for targetMonth, creating the report if this is the month's first trip.
// Returns domain.ErrValidation (allowance.ErrMissingField, ErrInvalidDateOrder,
// ErrInvalidFare, or the month-containment rule) for bad input.
func (s *TripService) Create(ctx context.Context, userID uuid.UUID, targetMonth string, raw allowance.RawInput) (domain.Trip, error) {
	in, err := s.validate(targetMonth, raw)
	if err != nil {
		return domain.Trip{}, err
	}

	rep, err := s.reports.GetOrCreate(ctx, userID, targetMonth)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	trip := buildTrip(in, allowance.Derive(in, s.policy))
	trip.ReportID = rep.ID
	trip.UserID = userID

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// Update replaces all fields of an existing trip with the re-validated input
// and recomputes every derived field. Derived fields are never editable on
// their own — an edit is always a full re-submit.
// Returns domain.ErrNotFound if the trip does not exist under the user's
// report for targetMonth.
func (s *TripService) Update(ctx context.Context, userID uuid.UUID, targetMonth string, tripID uuid.UUID, raw allowance.RawInput) (domain.Trip, error) {
	in, err := s.validate(targetMonth, raw)
	if err != nil {
		return domain.Trip{}, err
	}

	rep, err := s.reports.GetOrCreate(ctx, userID, targetMonth)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	trip := buildTrip(in, allowance.Derive(in, s.policy))
	trip.ID = tripID
	trip.ReportID = rep.ID
	trip.UserID = userID

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip from the user's report for targetMonth.
// Returns domain.ErrNotFound if it does not exist under that report.
func (s *TripService) Delete(ctx context.Context, userID uuid.UUID, targetMonth string, tripID uuid.UUID) error {
	rep, err := s.reports.GetOrCreate(ctx, userID, targetMonth)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.trips.Delete(ctx, rep.ID, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validate runs input validation plus the month-containment rule: the
// departure date must fall inside the report's target month. The return date
// may spill into the next month (a trip spanning month-end is legal).
func (s *TripService) validate(targetMonth string, raw allowance.RawInput) (allowance.Input, error) {
	if !domain.ValidMonthKey(targetMonth) {
		return allowance.Input{}, fmt.Errorf("%w: target month %q is not YYYY-MM", domain.ErrValidation, targetMonth)
	}
	in, err := allowance.ValidateInput(raw)
	if err != nil {
		return allowance.Input{}, err
	}
	if got := domain.MonthKey(in.DateFrom); got != targetMonth {
		return allowance.Input{}, fmt.Errorf("%w: departure date %s falls in %s, not in report month %s",
			domain.ErrValidation, in.DateFrom.Format(allowance.DateFormat), got, targetMonth)
	}
	return in, nil
}

// buildTrip assembles the persistable record from validated input and its
// derived fields.
func buildTrip(in allowance.Input, d allowance.Derived) domain.Trip {
	return domain.Trip{
		Destination:    in.Destination,
		DateFrom:       in.DateFrom,
		DateTo:         in.DateTo,
		OutboundMethod: in.OutboundMethod,
		OutboundFare:   in.OutboundFare,
		ReturnMethod:   in.ReturnMethod,
		ReturnFare:     in.ReturnFare,
		Nights:         d.Nights,
		TripType:       d.TripType,
		Allowance:      d.Allowance,
		TransportCost:  d.TransportCost,
		TotalCost:      d.TotalCost,
	}
}
