package models

import "time"

// Intent is the inferred purpose of a natural-language question.
type Intent string

const (
	IntentTotalUsage Intent = "total_usage"
	IntentTopDevices Intent = "top_devices"
)

// StructuredQuery is the normalized form of a free-text question.
// DeviceSlug is empty when no known device was mentioned; nil bounds
// mean the window is open on that side (all recorded history when both
// are nil). The window is half-open: [Start, End).
type StructuredQuery struct {
	Intent     Intent
	DeviceSlug string
	Start      *time.Time
	End        *time.Time
}

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Question string `json:"question"`
}

// TimeWindow echoes the resolved window back to the caller.
type TimeWindow struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// SeriesPoint is one hour bucket of an hourly usage series.
type SeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	KWh       float64   `json:"kwh"`
}

// UsageSummary carries the rounded total for a total_usage result.
type UsageSummary struct {
	TotalKWh float64 `json:"total_kwh"`
}

// UsageResponse is the result payload for the total_usage intent.
type UsageResponse struct {
	Intent  Intent        `json:"intent"`
	Device  Device        `json:"device"`
	Window  TimeWindow    `json:"window"`
	Summary UsageSummary  `json:"summary"`
	Series  []SeriesPoint `json:"series"`
}

// DeviceUsage is one ranked entry of a top_devices result.
type DeviceUsage struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	TotalKWh float64 `json:"total_kwh"`
}

// TopDevicesResponse is the result payload for the top_devices intent.
// Devices holds at most five entries, ranked by descending total.
type TopDevicesResponse struct {
	Intent  Intent        `json:"intent"`
	Window  TimeWindow    `json:"window"`
	Devices []DeviceUsage `json:"devices"`
}
