package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-claims/backend/internal/domain"
	"github.com/pkordes/trip-claims/backend/internal/repo"
)

func TestReportRepo_GetOrCreate_Idempotent(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	r := repo.NewReportRepo(tx)
	userID := uuid.New()

	first, err := r.GetOrCreate(ctx, userID, "2024-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", first.TargetMonth)
	assert.NotEqual(t, uuid.Nil, first.ID)

	// Second call must return the same row, not create a duplicate.
	second, err := r.GetOrCreate(ctx, userID, "2024-05")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestReportRepo_GetOrCreate_PerUser(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	r := repo.NewReportRepo(tx)

	a, err := r.GetOrCreate(ctx, uuid.New(), "2024-05")
	require.NoError(t, err)
	b, err := r.GetOrCreate(ctx, uuid.New(), "2024-05")
	require.NoError(t, err)

	// Same month, different users — different reports.
	assert.NotEqual(t, a.ID, b.ID)
}

func TestReportRepo_GetByID_ScopedToUser(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	r := repo.NewReportRepo(tx)
	userID := uuid.New()

	rep, err := r.GetOrCreate(ctx, userID, "2024-05")
	require.NoError(t, err)

	got, err := r.GetByID(ctx, userID, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)

	_, err = r.GetByID(ctx, uuid.New(), rep.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportRepo_ListByUser_NewestMonthFirst(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	r := repo.NewReportRepo(tx)
	userID := uuid.New()

	for _, month := range []string{"2024-03", "2024-07", "2024-05"} {
		_, err := r.GetOrCreate(ctx, userID, month)
		require.NoError(t, err)
	}

	reports, total, err := r.ListByUser(ctx, userID, domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, reports, 3)
	assert.Equal(t, "2024-07", reports[0].TargetMonth)
	assert.Equal(t, "2024-05", reports[1].TargetMonth)
	assert.Equal(t, "2024-03", reports[2].TargetMonth)
}

func TestReportRepo_ListByUser_Paged(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	r := repo.NewReportRepo(tx)
	userID := uuid.New()

	for _, month := range []string{"2024-01", "2024-02", "2024-03"} {
		_, err := r.GetOrCreate(ctx, userID, month)
		require.NoError(t, err)
	}

	page, limit := 2, 2
	reports, total, err := r.ListByUser(ctx, userID, domain.NewPaginationParams(&page, &limit))

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, reports, 1)
	assert.Equal(t, "2024-01", reports[0].TargetMonth)
}
