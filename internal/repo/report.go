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

// ReportRepo defines the persistence operations for MonthlyReports.
// Reports have get-or-create semantics and are never deleted in normal flow.
type ReportRepo interface {
	// GetOrCreate returns the report for (userID, targetMonth), creating an
	// empty one if it does not exist yet. Safe under concurrent callers —
	// both see the same row.
	GetOrCreate(ctx context.Context, userID uuid.UUID, targetMonth string) (domain.MonthlyReport, error)

	// GetByID retrieves a report by ID, scoped to the given userID.
	// Returns domain.ErrNotFound if no report with that ID belongs to that user.
	GetByID(ctx context.Context, userID, reportID uuid.UUID) (domain.MonthlyReport, error)

	// ListByUser returns a page of the user's reports ordered by target_month
	// descending (most recent first), plus the total report count.
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.MonthlyReport, int64, error)
}

// pgReportRepo is the Postgres implementation of ReportRepo.
type pgReportRepo struct {
	db db
}

// NewReportRepo constructs a ReportRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewReportRepo(db db) ReportRepo {
	return &pgReportRepo{db: db}
}

// GetOrCreate races safely via ON CONFLICT DO NOTHING followed by a read:
// whichever caller wins the insert, the follow-up select sees the same row.
func (r *pgReportRepo) GetOrCreate(ctx context.Context, userID uuid.UUID, targetMonth string) (domain.MonthlyReport, error) {
	const ins = `
		INSERT INTO monthly_reports (user_id, target_month)
		VALUES (@user_id, @target_month)
		ON CONFLICT (user_id, target_month) DO NOTHING`

	args := pgx.NamedArgs{"user_id": userID, "target_month": targetMonth}
	if _, err := r.db.Exec(ctx, ins, args); err != nil {
		return domain.MonthlyReport{}, fmt.Errorf("repo.ReportRepo.GetOrCreate: insert: %w", err)
	}

	const sel = `
		SELECT id, user_id, target_month, created_at
		FROM monthly_reports
		WHERE user_id = @user_id AND target_month = @target_month`

	row := r.db.QueryRow(ctx, sel, args)
	result, err := scanReport(row)
	if err != nil {
		return domain.MonthlyReport{}, fmt.Errorf("repo.ReportRepo.GetOrCreate: %w", err)
	}
	return result, nil
}

func (r *pgReportRepo) GetByID(ctx context.Context, userID, reportID uuid.UUID) (domain.MonthlyReport, error) {
	const q = `
		SELECT id, user_id, target_month, created_at
		FROM monthly_reports
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": reportID, "user_id": userID})
	result, err := scanReport(row)
	if err != nil {
		return domain.MonthlyReport{}, fmt.Errorf("repo.ReportRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgReportRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.MonthlyReport, int64, error) {
	const countQ = `SELECT count(*) FROM monthly_reports WHERE user_id = @user_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ReportRepo.ListByUser: count: %w", err)
	}

	const q = `
		SELECT id, user_id, target_month, created_at
		FROM monthly_reports
		WHERE user_id = @user_id
		ORDER BY target_month DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ReportRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var reports []domain.MonthlyReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ReportRepo.ListByUser: scan: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ReportRepo.ListByUser: rows: %w", err)
	}

	return reports, total, nil
}

// scanReport maps a single database row into a domain.MonthlyReport.
func scanReport(s scanner) (domain.MonthlyReport, error) {
	var (
		rep    domain.MonthlyReport
		id     pgtype.UUID
		userID pgtype.UUID
	)

	err := s.Scan(&id, &userID, &rep.TargetMonth, &rep.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MonthlyReport{}, domain.ErrNotFound
		}
		return domain.MonthlyReport{}, err
	}

	rep.ID = uuid.UUID(id.Bytes)
	rep.UserID = uuid.UUID(userID.Bytes)

	return rep, nil
}
