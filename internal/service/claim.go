package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-claims/backend/internal/allowance"
	"github.com/pkordes/trip-claims/backend/internal/claim"
	"github.com/pkordes/trip-claims/backend/internal/domain"
	"github.com/pkordes/trip-claims/backend/internal/repo"
)

// ClaimService assembles the printable claim document for a month: claimant
// name from the profile, trips from the report, document from the pure builder.
type ClaimService struct {
	profiles repo.ProfileRepo
	reports  repo.ReportRepo
	trips    repo.TripRepo
	policy   allowance.Policy
}

// NewClaimService constructs a ClaimService backed by the provided repos,
// stamping the given allowance policy into every document's footnote.
func NewClaimService(profiles repo.ProfileRepo, reports repo.ReportRepo, trips repo.TripRepo, policy allowance.Policy) *ClaimService {
	return &ClaimService{profiles: profiles, reports: reports, trips: trips, policy: policy}
}

// BuildForMonth returns the claim document for the user's targetMonth report.
// A user with no saved profile gets a blank claimant line — the UI warns
// out-of-band, the document itself never fails on it.
// Returns domain.ErrValidation for a bad month key or variant.
func (s *ClaimService) BuildForMonth(ctx context.Context, userID uuid.UUID, targetMonth string, variant domain.ClaimVariant) (domain.ClaimDocument, error) {
	if !domain.ValidMonthKey(targetMonth) {
		return domain.ClaimDocument{}, fmt.Errorf("%w: target month %q is not YYYY-MM", domain.ErrValidation, targetMonth)
	}

	var claimant string
	profile, err := s.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		claimant = profile.DisplayName
	case errors.Is(err, domain.ErrNotFound):
		// No settings saved yet — blank claimant.
	default:
		return domain.ClaimDocument{}, fmt.Errorf("service.ClaimService.BuildForMonth: %w", err)
	}

	rep, err := s.reports.GetOrCreate(ctx, userID, targetMonth)
	if err != nil {
		return domain.ClaimDocument{}, fmt.Errorf("service.ClaimService.BuildForMonth: %w", err)
	}

	// ListByReport is date_from ascending — exactly the order the sheet lists.
	trips, err := s.trips.ListByReport(ctx, rep.ID)
	if err != nil {
		return domain.ClaimDocument{}, fmt.Errorf("service.ClaimService.BuildForMonth: %w", err)
	}

	doc, err := claim.Build(claimant, targetMonth, trips, variant, s.policy)
	if err != nil {
		return domain.ClaimDocument{}, err
	}
	return doc, nil
}
