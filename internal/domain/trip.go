// Package domain contains the core data types for the trip expense claim
// application. This package has zero external dependencies and is imported by
// every other internal package (allowance, claim, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single reimbursable business trip.
// A trip belongs to exactly one MonthlyReport and one user.
//
// The Nights, TripType, Allowance, TransportCost, and TotalCost fields are
// derived from the dates and fares on every create/update. They are stored
// denormalized so past reports keep the figures they were filed with even if
// the allowance policy changes later.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	ReportID    uuid.UUID `json:"report_id"`
	UserID      uuid.UUID `json:"user_id"`
	Destination string    `json:"destination"`
	DateFrom    time.Time `json:"date_from"` // departure date, date granularity
	DateTo      time.Time `json:"date_to"`   // return date, never before DateFrom

	// Outbound/return legs. Method is free text and may be empty.
	// Fares are integer yen, never negative.
	OutboundMethod string `json:"outbound_method,omitempty"`
	OutboundFare   int64  `json:"outbound_fare"`
	ReturnMethod   string `json:"return_method,omitempty"`
	ReturnFare     int64  `json:"return_fare"`

	// Derived fields — recomputed by the allowance engine, never set by callers.
	Nights        int    `json:"nights"`
	TripType      string `json:"trip_type"` // "日帰り" or "N泊"
	Allowance     int64  `json:"allowance"`
	TransportCost int64  `json:"transport_cost"`
	TotalCost     int64  `json:"total_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
