// Package allowance implements the per-diem allowance engine: validation of
// raw trip input, derivation of the classification and cost fields, and
// aggregation of trip sets into totals.
//
// Every function here is a pure, deterministic transform — no I/O, no clock,
// no side effects. The service layer validates, derives, then persists.
package allowance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/trip-claims/backend/internal/domain"
)

// Policy is the injected allowance schedule. Two tiers: a flat amount for a
// day trip, and a per-night amount for overnight trips. Amounts are integer yen.
type Policy struct {
	Daily     int64
	Overnight int64
}

// DefaultPolicy is the company schedule: ¥1,500 per day trip, ¥3,500 per night.
var DefaultPolicy = Policy{Daily: 1500, Overnight: 3500}

// Derived holds the fields computed from a trip's dates and fares.
type Derived struct {
	Nights        int
	TripType      string
	Allowance     int64
	TransportCost int64
	TotalCost     int64
}

// Input is trip input that has passed ValidateInput: parsed dates in order,
// coerced non-negative fares.
type Input struct {
	Destination    string
	DateFrom       time.Time
	DateTo         time.Time
	OutboundMethod string
	OutboundFare   int64
	ReturnMethod   string
	ReturnFare     int64
}

// RawInput is trip input exactly as submitted by the form: dates as
// "2006-01-02" strings, fares as strings that may be empty or garbage.
// An empty fare is treated as zero; an empty method is allowed.
type RawInput struct {
	Destination    string
	DateFrom       string
	DateTo         string
	OutboundMethod string
	OutboundFare   string
	ReturnMethod   string
	ReturnFare     string
}

// Typed validation failures. All wrap domain.ErrValidation, so handlers can
// match the family with one errors.Is and callers can still distinguish the
// specific cause for inline field messages.
var (
	ErrMissingField     = fmt.Errorf("%w: required field is missing", domain.ErrValidation)
	ErrInvalidDateOrder = fmt.Errorf("%w: return date is before departure date", domain.ErrValidation)
	ErrInvalidFare      = fmt.Errorf("%w: fare must be a non-negative integer", domain.ErrValidation)
)

// DateFormat is the wire format for trip dates.
const DateFormat = "2006-01-02"

// ValidateInput checks and coerces raw form input. It is the only gate in
// front of Derive: once input passes here, derivation cannot fail.
//
// Failures are returned as values (never panics) so the handler can render
// them inline next to the offending field:
//   - ErrMissingField when destination or either date is blank
//   - ErrInvalidDateOrder when dateTo < dateFrom
//   - ErrMissingField / ErrInvalidFare for unparseable or negative dates/fares
func ValidateInput(raw RawInput) (Input, error) {
	if strings.TrimSpace(raw.Destination) == "" {
		return Input{}, fmt.Errorf("%w: destination", ErrMissingField)
	}
	if raw.DateFrom == "" {
		return Input{}, fmt.Errorf("%w: date_from", ErrMissingField)
	}
	if raw.DateTo == "" {
		return Input{}, fmt.Errorf("%w: date_to", ErrMissingField)
	}

	from, err := time.Parse(DateFormat, raw.DateFrom)
	if err != nil {
		return Input{}, fmt.Errorf("%w: date_from %q", ErrMissingField, raw.DateFrom)
	}
	to, err := time.Parse(DateFormat, raw.DateTo)
	if err != nil {
		return Input{}, fmt.Errorf("%w: date_to %q", ErrMissingField, raw.DateTo)
	}
	if to.Before(from) {
		return Input{}, ErrInvalidDateOrder
	}

	outFare, err := parseFare(raw.OutboundFare)
	if err != nil {
		return Input{}, fmt.Errorf("%w: outbound_fare %q", ErrInvalidFare, raw.OutboundFare)
	}
	retFare, err := parseFare(raw.ReturnFare)
	if err != nil {
		return Input{}, fmt.Errorf("%w: return_fare %q", ErrInvalidFare, raw.ReturnFare)
	}

	return Input{
		Destination:    strings.TrimSpace(raw.Destination),
		DateFrom:       from,
		DateTo:         to,
		OutboundMethod: strings.TrimSpace(raw.OutboundMethod),
		OutboundFare:   outFare,
		ReturnMethod:   strings.TrimSpace(raw.ReturnMethod),
		ReturnFare:     retFare,
	}, nil
}

// parseFare coerces a form fare string to integer yen.
// Empty means zero (a leg with no fare entered), anything else must parse to
// a non-negative integer.
func parseFare(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, ErrInvalidFare
	}
	return n, nil
}

// Derive computes the classification and cost fields for a validated trip.
// Preconditions (enforced by ValidateInput, not re-checked here): dates are
// valid and in order, fares are non-negative. The result is always fully
// defined — there is no error branch.
func Derive(in Input, p Policy) Derived {
	nights := Nights(in.DateFrom, in.DateTo)

	d := Derived{
		Nights:        nights,
		TripType:      TripType(nights),
		TransportCost: in.OutboundFare + in.ReturnFare,
	}
	if nights == 0 {
		d.Allowance = p.Daily
	} else {
		d.Allowance = int64(nights) * p.Overnight
	}
	d.TotalCost = d.TransportCost + d.Allowance
	return d
}

// Nights returns the whole-day difference between two dates.
// Both arguments are normalized to midnight UTC before differencing, so the
// count is true calendar-day subtraction — a trip spanning a daylight-saving
// transition still counts exact nights, unlike a flat 24h division.
func Nights(from, to time.Time) int {
	f := midnightUTC(from)
	t := midnightUTC(to)
	return int(t.Sub(f) / (24 * time.Hour))
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TripType returns the classification label: "日帰り" for a day trip,
// "N泊" for any overnight count. There is no cap on N.
func TripType(nights int) string {
	if nights == 0 {
		return "日帰り"
	}
	return strconv.Itoa(nights) + "泊"
}

// Summary holds exact integer totals over a set of trips.
type Summary struct {
	TotalTransport int64 `json:"total_transport"`
	TotalAllowance int64 `json:"total_allowance"`
	GrandTotal     int64 `json:"grand_total"`
	Count          int   `json:"count"`
}

// Aggregate sums transport, allowance, and grand totals over trips.
// Pure commutative summation — input order does not matter, an empty or nil
// slice yields the zero Summary.
func Aggregate(trips []domain.Trip) Summary {
	var s Summary
	for _, t := range trips {
		s.TotalTransport += t.TransportCost
		s.TotalAllowance += t.Allowance
		s.Count++
	}
	s.GrandTotal = s.TotalTransport + s.TotalAllowance
	return s
}
