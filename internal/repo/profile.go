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

// ProfileRepo defines the persistence operations for Profiles.
// Profiles are keyed by user ID; there is at most one row per user.
type ProfileRepo interface {
	// Get retrieves the profile for userID.
	// Returns domain.ErrNotFound if the user has never saved settings.
	Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error)

	// Upsert creates or replaces the profile row for profile.UserID and
	// returns the persisted record.
	Upsert(ctx context.Context, profile domain.Profile) (domain.Profile, error)
}

// pgProfileRepo is the Postgres implementation of ProfileRepo.
type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

func (r *pgProfileRepo) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	const q = `
		SELECT user_id, display_name, department, updated_at
		FROM profiles
		WHERE user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID})
	result, err := scanProfile(row)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Get: %w", err)
	}
	return result, nil
}

func (r *pgProfileRepo) Upsert(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	const q = `
		INSERT INTO profiles (user_id, display_name, department)
		VALUES (@user_id, @display_name, @department)
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = excluded.display_name,
		    department   = excluded.department,
		    updated_at   = now()
		RETURNING user_id, display_name, department, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"user_id":      profile.UserID,
		"display_name": profile.DisplayName,
		"department":   profile.Department,
	})
	result, err := scanProfile(row)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Upsert: %w", err)
	}
	return result, nil
}

// scanProfile maps a single database row into a domain.Profile.
func scanProfile(s scanner) (domain.Profile, error) {
	var (
		p      domain.Profile
		userID pgtype.UUID
	)

	err := s.Scan(&userID, &p.DisplayName, &p.Department, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, err
	}

	p.UserID = uuid.UUID(userID.Bytes)

	return p, nil
}
