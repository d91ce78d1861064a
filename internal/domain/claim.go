package domain

// ClaimVariant selects the claim sheet layout.
type ClaimVariant string

const (
	// ClaimSimple lists one transport figure per trip.
	ClaimSimple ClaimVariant = "simple"
	// ClaimDetailed lists separate outbound and return method + fare columns.
	ClaimDetailed ClaimVariant = "detailed"
)

// ClaimDocument is the fully-specified, render-ready representation of one
// month's expense claim sheet: header metadata, numbered line items, footer
// totals, and the fixed allowance footnote.
//
// It is a pure value with no rendering-technology or timestamp dependency.
// The "issued on" date is deliberately absent — the caller stamps it at
// render time, so identical inputs always produce identical documents.
type ClaimDocument struct {
	Title        string       `json:"title"` // "出張経費申請書"
	ClaimantName string       `json:"claimant_name"`
	TargetMonth  string       `json:"target_month"` // "YYYY-MM"
	MonthLabel   string       `json:"month_label"`  // "2024年5月"
	Variant      ClaimVariant `json:"variant"`
	Rows         []ClaimRow   `json:"rows"`
	Totals       ClaimTotals  `json:"totals"`
	Footnote     string       `json:"footnote"`
}

// ClaimRow is one numbered line item of the claim sheet. Monetary fields
// carry both the exact integer amount and a display string ("¥28,000").
// The outbound/return leg fields are populated only for the detailed variant.
type ClaimRow struct {
	No          int    `json:"no"` // 1-based, in listed order
	Destination string `json:"destination"`
	DateFrom    string `json:"date_from"` // "2006/01/02"
	DateTo      string `json:"date_to"`
	TripType    string `json:"trip_type"`

	OutboundMethod string `json:"outbound_method,omitempty"`
	OutboundFare   int64  `json:"outbound_fare,omitempty"`
	OutboundLabel  string `json:"outbound_label,omitempty"` // "新幹線 ¥8,000"
	ReturnMethod   string `json:"return_method,omitempty"`
	ReturnFare     int64  `json:"return_fare,omitempty"`
	ReturnLabel    string `json:"return_label,omitempty"`

	TransportCost int64  `json:"transport_cost"`
	Transport     string `json:"transport"` // display string
	Allowance     int64  `json:"allowance"`
	AllowanceStr  string `json:"allowance_str"`
	TotalCost     int64  `json:"total_cost"`
	Total         string `json:"total"`
}

// ClaimTotals is the footer row of the claim sheet. GrandTotal is the
// emphasized figure on the printed sheet.
type ClaimTotals struct {
	TotalTransport int64  `json:"total_transport"`
	Transport      string `json:"transport"`
	TotalAllowance int64  `json:"total_allowance"`
	Allowance      string `json:"allowance"`
	GrandTotal     int64  `json:"grand_total"`
	Grand          string `json:"grand"`
}
