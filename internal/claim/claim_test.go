package claim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-claims/backend/internal/allowance"
	"github.com/pkordes/trip-claims/backend/internal/claim"
	"github.com/pkordes/trip-claims/backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// osakaTrip is a 1-night trip with split fares, derived fields pre-computed
// the way TripService stores them.
func osakaTrip() domain.Trip {
	return domain.Trip{
		Destination:    "大阪本社",
		DateFrom:       date(2024, 5, 1),
		DateTo:         date(2024, 5, 2),
		OutboundMethod: "新幹線",
		OutboundFare:   8000,
		ReturnMethod:   "新幹線",
		ReturnFare:     7500,
		Nights:         1,
		TripType:       "1泊",
		Allowance:      3500,
		TransportCost:  15500,
		TotalCost:      19000,
	}
}

func nagoyaDayTrip() domain.Trip {
	return domain.Trip{
		Destination:   "名古屋支店",
		DateFrom:      date(2024, 5, 10),
		DateTo:        date(2024, 5, 10),
		Nights:        0,
		TripType:      "日帰り",
		Allowance:     1500,
		TransportCost: 11000,
		TotalCost:     12500,
	}
}

func TestBuild_Header(t *testing.T) {
	doc, err := claim.Build("山田太郎", "2024-05", nil, domain.ClaimSimple, allowance.DefaultPolicy)

	require.NoError(t, err)
	assert.Equal(t, "出張経費申請書", doc.Title)
	assert.Equal(t, "山田太郎", doc.ClaimantName)
	assert.Equal(t, "2024-05", doc.TargetMonth)
	assert.Equal(t, "2024年5月", doc.MonthLabel) // leading zero stripped
}

func TestBuild_EmptyClaimantAllowed(t *testing.T) {
	doc, err := claim.Build("", "2024-05", nil, domain.ClaimSimple, allowance.DefaultPolicy)

	require.NoError(t, err)
	assert.Empty(t, doc.ClaimantName)
}

func TestBuild_BadMonthKey(t *testing.T) {
	_, err := claim.Build("x", "May 2024", nil, domain.ClaimSimple, allowance.DefaultPolicy)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBuild_BadVariant(t *testing.T) {
	_, err := claim.Build("x", "2024-05", nil, domain.ClaimVariant("fancy"), allowance.DefaultPolicy)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBuild_RowNumberingFollowsInputOrder(t *testing.T) {
	trips := []domain.Trip{osakaTrip(), nagoyaDayTrip()}

	doc, err := claim.Build("山田太郎", "2024-05", trips, domain.ClaimSimple, allowance.DefaultPolicy)
	require.NoError(t, err)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, 1, doc.Rows[0].No)
	assert.Equal(t, "大阪本社", doc.Rows[0].Destination)
	assert.Equal(t, 2, doc.Rows[1].No)

	// The builder must not reorder: swapping the input swaps the rows.
	swapped, err := claim.Build("山田太郎", "2024-05", []domain.Trip{trips[1], trips[0]}, domain.ClaimSimple, allowance.DefaultPolicy)
	require.NoError(t, err)
	assert.Equal(t, "名古屋支店", swapped.Rows[0].Destination)
	assert.Equal(t, 1, swapped.Rows[0].No)
}

func TestBuild_SimpleRowFields(t *testing.T) {
	doc, err := claim.Build("x", "2024-05", []domain.Trip{osakaTrip()}, domain.ClaimSimple, allowance.DefaultPolicy)
	require.NoError(t, err)

	row := doc.Rows[0]
	assert.Equal(t, "2024/05/01", row.DateFrom)
	assert.Equal(t, "2024/05/02", row.DateTo)
	assert.Equal(t, "1泊", row.TripType)
	assert.Equal(t, "¥15,500", row.Transport)
	assert.Equal(t, "¥3,500", row.AllowanceStr)
	assert.Equal(t, "¥19,000", row.Total)
	// Simple variant carries no leg columns.
	assert.Empty(t, row.OutboundLabel)
	assert.Empty(t, row.ReturnLabel)
}

func TestBuild_DetailedRowFields(t *testing.T) {
	doc, err := claim.Build("x", "2024-05", []domain.Trip{osakaTrip()}, domain.ClaimDetailed, allowance.DefaultPolicy)
	require.NoError(t, err)

	row := doc.Rows[0]
	assert.Equal(t, "新幹線 ¥8,000", row.OutboundLabel)
	assert.Equal(t, "新幹線 ¥7,500", row.ReturnLabel)
}

func TestBuild_DetailedMissingLegRendersZero(t *testing.T) {
	trip := nagoyaDayTrip() // no methods, no fares

	doc, err := claim.Build("x", "2024-05", []domain.Trip{trip}, domain.ClaimDetailed, allowance.DefaultPolicy)
	require.NoError(t, err)

	row := doc.Rows[0]
	assert.Equal(t, "¥0", row.OutboundLabel)
	assert.Equal(t, "¥0", row.ReturnLabel)
	assert.Empty(t, row.OutboundMethod)
}

func TestBuild_Totals(t *testing.T) {
	trips := []domain.Trip{osakaTrip(), nagoyaDayTrip()}

	doc, err := claim.Build("x", "2024-05", trips, domain.ClaimSimple, allowance.DefaultPolicy)
	require.NoError(t, err)

	assert.Equal(t, int64(26500), doc.Totals.TotalTransport)
	assert.Equal(t, int64(5000), doc.Totals.TotalAllowance)
	assert.Equal(t, int64(31500), doc.Totals.GrandTotal)
	assert.Equal(t, "¥31,500", doc.Totals.Grand)
	assert.Equal(t, doc.Totals.TotalTransport+doc.Totals.TotalAllowance, doc.Totals.GrandTotal)
}

func TestBuild_EmptyMonthStillHasFootnote(t *testing.T) {
	doc, err := claim.Build("x", "2024-05", nil, domain.ClaimDetailed, allowance.DefaultPolicy)
	require.NoError(t, err)

	assert.Empty(t, doc.Rows)
	assert.Zero(t, doc.Totals.GrandTotal)
	assert.Equal(t, "※ 出張手当: 日帰り ¥1,500/回、宿泊 ¥3,500/泊", doc.Footnote)
}

func TestBuild_Deterministic(t *testing.T) {
	trips := []domain.Trip{osakaTrip(), nagoyaDayTrip()}

	a, err := claim.Build("山田太郎", "2024-05", trips, domain.ClaimDetailed, allowance.DefaultPolicy)
	require.NoError(t, err)
	b, err := claim.Build("山田太郎", "2024-05", trips, domain.ClaimDetailed, allowance.DefaultPolicy)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMonthLabel(t *testing.T) {
	label, err := claim.MonthLabel("2024-12")
	require.NoError(t, err)
	assert.Equal(t, "2024年12月", label)
}

func TestCurrentMonthKey(t *testing.T) {
	now := time.Date(2024, 7, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-07", claim.CurrentMonthKey(now))
}
