package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// MonthlyReport groups one user's trips for one calendar month.
// Reports are created on demand the first time a user visits a month
// (get-or-create by user + target month) and are never deleted in normal flow.
// A report has no numeric fields of its own — totals are always derived by
// summing its trips.
type MonthlyReport struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	TargetMonth string    `json:"target_month"` // "YYYY-MM"
	CreatedAt   time.Time `json:"created_at"`
}

// ReportSummary pairs a report with aggregate figures over its trips,
// used by the past-reports listing.
type ReportSummary struct {
	Report         MonthlyReport `json:"report"`
	TripCount      int           `json:"trip_count"`
	TotalTransport int64         `json:"total_transport"`
	TotalAllowance int64         `json:"total_allowance"`
	GrandTotal     int64         `json:"grand_total"`
}

// monthKeyRe matches a "YYYY-MM" month key with a valid month part.
var monthKeyRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonthKey reports whether s is a well-formed "YYYY-MM" month key.
func ValidMonthKey(s string) bool {
	return monthKeyRe.MatchString(s)
}

// MonthKey formats t as a "YYYY-MM" month key.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
