// Package claim implements the claim document builder: it turns a claimant
// name, a target month, and an ordered list of trips into the render-ready
// domain.ClaimDocument value used for both on-screen display and the
// printable sheet.
//
// Build is a pure transform. It trusts the caller's trip order (the repo
// fetch is date_from ascending) and never reorders, so row numbering always
// follows the listed order.
package claim

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"

	"github.com/pkordes/trip-claims/backend/internal/allowance"
	"github.com/pkordes/trip-claims/backend/internal/domain"
)

// Title is the fixed heading of the claim sheet.
const Title = "出張経費申請書"

// rowDateFormat is how trip dates appear on the sheet.
const rowDateFormat = "2006/01/02"

// Build assembles a claim document for one month's trips.
//
// claimant may be empty — the sheet renders a blank claimant line and the UI
// warns out-of-band. trips must already be ordered date_from ascending.
// Returns domain.ErrValidation if targetMonth is not a "YYYY-MM" key.
func Build(claimant, targetMonth string, trips []domain.Trip, variant domain.ClaimVariant, policy allowance.Policy) (domain.ClaimDocument, error) {
	label, err := MonthLabel(targetMonth)
	if err != nil {
		return domain.ClaimDocument{}, err
	}
	if variant != domain.ClaimSimple && variant != domain.ClaimDetailed {
		return domain.ClaimDocument{}, fmt.Errorf("%w: unknown claim variant %q", domain.ErrValidation, variant)
	}

	doc := domain.ClaimDocument{
		Title:        Title,
		ClaimantName: claimant,
		TargetMonth:  targetMonth,
		MonthLabel:   label,
		Variant:      variant,
		Rows:         make([]domain.ClaimRow, 0, len(trips)),
		Footnote:     Footnote(policy),
	}

	for i, t := range trips {
		doc.Rows = append(doc.Rows, buildRow(i+1, t, variant))
	}

	sum := allowance.Aggregate(trips)
	doc.Totals = domain.ClaimTotals{
		TotalTransport: sum.TotalTransport,
		Transport:      Yen(sum.TotalTransport),
		TotalAllowance: sum.TotalAllowance,
		Allowance:      Yen(sum.TotalAllowance),
		GrandTotal:     sum.GrandTotal,
		Grand:          Yen(sum.GrandTotal),
	}

	return doc, nil
}

// buildRow maps one trip to a numbered line item.
// no is the 1-based row number in listed order, independent of the trip's
// stored identifier.
func buildRow(no int, t domain.Trip, variant domain.ClaimVariant) domain.ClaimRow {
	row := domain.ClaimRow{
		No:            no,
		Destination:   t.Destination,
		DateFrom:      t.DateFrom.Format(rowDateFormat),
		DateTo:        t.DateTo.Format(rowDateFormat),
		TripType:      t.TripType,
		TransportCost: t.TransportCost,
		Transport:     Yen(t.TransportCost),
		Allowance:     t.Allowance,
		AllowanceStr:  Yen(t.Allowance),
		TotalCost:     t.TotalCost,
		Total:         Yen(t.TotalCost),
	}

	if variant == domain.ClaimDetailed {
		// A missing method renders empty, a missing fare renders as ¥0 —
		// never an error.
		row.OutboundMethod = t.OutboundMethod
		row.OutboundFare = t.OutboundFare
		row.OutboundLabel = legLabel(t.OutboundMethod, t.OutboundFare)
		row.ReturnMethod = t.ReturnMethod
		row.ReturnFare = t.ReturnFare
		row.ReturnLabel = legLabel(t.ReturnMethod, t.ReturnFare)
	}

	return row
}

// legLabel joins a transport method and fare for the detailed columns,
// e.g. "新幹線 ¥8,000"; with no method it is just the fare.
func legLabel(method string, fare int64) string {
	amount := Yen(fare)
	if method == "" {
		return amount
	}
	return method + " " + amount
}

// MonthLabel converts a "YYYY-MM" key to its display label, e.g.
// "2024-05" → "2024年5月" (leading zero stripped from the month).
func MonthLabel(targetMonth string) (string, error) {
	if !domain.ValidMonthKey(targetMonth) {
		return "", fmt.Errorf("%w: target month %q is not YYYY-MM", domain.ErrValidation, targetMonth)
	}
	parts := strings.SplitN(targetMonth, "-", 2)
	m, _ := strconv.Atoi(parts[1])
	return fmt.Sprintf("%s年%d月", parts[0], m), nil
}

// Footnote returns the fixed allowance note appended to every sheet,
// independent of trip content.
func Footnote(p allowance.Policy) string {
	return fmt.Sprintf("※ 出張手当: 日帰り %s/回、宿泊 %s/泊", Yen(p.Daily), Yen(p.Overnight))
}

// Yen formats an integer yen amount for display, e.g. 28000 → "¥28,000".
// JPY has no minor units, so the amount maps 1:1 onto go-money's smallest unit.
func Yen(amount int64) string {
	return money.New(amount, money.JPY).Display()
}

// CurrentMonthKey returns the "YYYY-MM" key for now in the given location.
// The dashboard uses it to select the default report month.
func CurrentMonthKey(now time.Time) string {
	return domain.MonthKey(now)
}
