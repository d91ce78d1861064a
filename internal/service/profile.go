package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-claims/backend/internal/domain"
	"github.com/pkordes/trip-claims/backend/internal/repo"
)

// ProfileService implements the user settings operations.
type ProfileService struct {
	profiles repo.ProfileRepo
}

// NewProfileService constructs a ProfileService backed by the provided repo.
func NewProfileService(profiles repo.ProfileRepo) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the user's profile. A user who has never saved settings gets a
// zero-value profile with their ID filled in, not an error — the settings
// form renders empty fields.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Profile{UserID: userID}, nil
		}
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Get: %w", err)
	}
	return profile, nil
}

// Update saves the display name and department. Both may be blank — an empty
// display name just prints a blank claimant line on the sheet.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, displayName, department string) (domain.Profile, error) {
	profile, err := s.profiles.Upsert(ctx, domain.Profile{
		UserID:      userID,
		DisplayName: strings.TrimSpace(displayName),
		Department:  strings.TrimSpace(department),
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}
	return profile, nil
}
