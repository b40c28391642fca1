package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"WattChat.influxDB/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func telemetryFixture() (*TelemetryService, *fakeStore) {
	devices := &fakeDirectory{devices: []models.Device{
		{ID: "d1", UserID: "u1", Name: "Fridge", Slug: "fridge"},
	}}
	store := &fakeStore{}
	return NewTelemetryService(devices, store), store
}

func TestRecordReading(t *testing.T) {
	svc, store := telemetryFixture()

	reading, err := svc.Record(context.Background(), "u1", "fridge", models.TelemetryRequest{
		Timestamp: "2026-08-27T01:10:00Z",
		EnergyKWh: 0.02,
	})
	require.NoError(t, err)
	assert.Equal(t, "d1", reading.DeviceID)
	assert.Equal(t, 0.02, reading.EnergyKWh)
	require.Len(t, store.readings, 1)
}

func TestRecordRejectsNegativeEnergy(t *testing.T) {
	svc, store := telemetryFixture()

	_, err := svc.Record(context.Background(), "u1", "fridge", models.TelemetryRequest{
		Timestamp: "2026-08-27T01:10:00Z",
		EnergyKWh: -0.5,
	})
	apiErr := apiError(t, err)
	assert.Equal(t, models.ErrorCodeValidationFailed, apiErr.Code)
	assert.Empty(t, store.readings)
}

func TestRecordRejectsBadTimestamp(t *testing.T) {
	svc, _ := telemetryFixture()

	_, err := svc.Record(context.Background(), "u1", "fridge", models.TelemetryRequest{
		Timestamp: "yesterday at noon",
		EnergyKWh: 0.1,
	})
	apiErr := apiError(t, err)
	assert.Equal(t, models.ErrorCodeInvalidFormat, apiErr.Code)

	_, err = svc.Record(context.Background(), "u1", "fridge", models.TelemetryRequest{EnergyKWh: 0.1})
	apiErr = apiError(t, err)
	assert.Equal(t, models.ErrorCodeMissingParameter, apiErr.Code)
}

func TestRecordForeignDevice(t *testing.T) {
	svc, _ := telemetryFixture()

	_, err := svc.Record(context.Background(), "u2", "fridge", models.TelemetryRequest{
		Timestamp: "2026-08-27T01:10:00Z",
		EnergyKWh: 0.1,
	})
	apiErr := apiError(t, err)
	assert.Equal(t, models.ErrorCodeDeviceNotFound, apiErr.Code)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestListNewestFirst(t *testing.T) {
	svc, store := telemetryFixture()
	base := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	store.readings = []models.TelemetryReading{
		{DeviceID: "d1", Timestamp: base, EnergyKWh: 0.1},
		{DeviceID: "d1", Timestamp: base.Add(2 * time.Hour), EnergyKWh: 0.3},
		{DeviceID: "d1", Timestamp: base.Add(time.Hour), EnergyKWh: 0.2},
	}

	readings, err := svc.List(context.Background(), "u1", "fridge", nil, nil)
	require.NoError(t, err)
	require.Len(t, readings, 3)
	assert.Equal(t, 0.3, readings[0].EnergyKWh)
	assert.Equal(t, 0.2, readings[1].EnergyKWh)
	assert.Equal(t, 0.1, readings[2].EnergyKWh)
}

func TestSummaryTotals(t *testing.T) {
	svc, store := telemetryFixture()
	base := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	store.readings = []models.TelemetryReading{
		{DeviceID: "d1", Timestamp: base, EnergyKWh: 0.1},
		{DeviceID: "d1", Timestamp: base.Add(time.Hour), EnergyKWh: 0.2},
	}

	summary, err := svc.Summary(context.Background(), "u1", "fridge", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "d1", summary.DeviceID)
	assert.Equal(t, 0.3, summary.TotalKWh)

	// A window with no readings is a zero total, not an error.
	start := base.Add(48 * time.Hour)
	end := start.Add(time.Hour)
	summary, err = svc.Summary(context.Background(), "u1", "fridge", &start, &end)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.TotalKWh)
}
