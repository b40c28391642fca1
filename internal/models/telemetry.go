package models

import "time"

// TelemetryReading is a single energy sample for one device.
// Readings are append-only; timestamps are UTC instants and are not
// assumed to be unique or evenly spaced.
type TelemetryReading struct {
	DeviceID  string    `json:"device_id"`
	Timestamp time.Time `json:"timestamp"`
	EnergyKWh float64   `json:"energy_kwh"`
}

// TelemetryRequest is the ingest payload for POST /devices/{slug}/telemetry.
type TelemetryRequest struct {
	Timestamp string  `json:"timestamp"`
	EnergyKWh float64 `json:"energy_kwh"`
}

// SummaryResponse is the per-device total over an optional window.
type SummaryResponse struct {
	DeviceID string  `json:"device_id"`
	TotalKWh float64 `json:"total_kwh"`
}
