package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"WattChat.influxDB/internal/models"
	"WattChat.influxDB/internal/repository"
)

// listingLimit caps a telemetry listing response.
const listingLimit = 1000

// TelemetryService handles reading ingest and per-device retrieval.
type TelemetryService struct {
	devices   repository.DeviceDirectory
	telemetry repository.TelemetryStore
}

// NewTelemetryService creates a new TelemetryService.
func NewTelemetryService(devices repository.DeviceDirectory, telemetry repository.TelemetryStore) *TelemetryService {
	return &TelemetryService{
		devices:   devices,
		telemetry: telemetry,
	}
}

// Record validates and appends one reading for the user's device.
func (s *TelemetryService) Record(ctx context.Context, userID, slug string, req models.TelemetryRequest) (models.TelemetryReading, error) {
	device, err := s.resolve(ctx, userID, slug)
	if err != nil {
		return models.TelemetryReading{}, err
	}

	if req.Timestamp == "" {
		return models.TelemetryReading{}, models.NewAPIError(models.ErrorCodeMissingParameter, "timestamp is required", nil, http.StatusBadRequest)
	}
	timestamp, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return models.TelemetryReading{}, models.NewAPIError(models.ErrorCodeInvalidFormat,
			fmt.Sprintf("invalid timestamp '%s', expected RFC3339", req.Timestamp), nil, http.StatusBadRequest)
	}
	if req.EnergyKWh < 0 {
		return models.TelemetryReading{}, models.NewAPIError(models.ErrorCodeValidationFailed, "energy_kwh must be non-negative", nil, http.StatusBadRequest)
	}

	reading := models.TelemetryReading{
		DeviceID:  device.ID,
		Timestamp: timestamp.UTC(),
		EnergyKWh: req.EnergyKWh,
	}
	if err := s.telemetry.Append(ctx, reading.DeviceID, reading.Timestamp, reading.EnergyKWh); err != nil {
		return models.TelemetryReading{}, fmt.Errorf("error appending reading: %w", err)
	}
	return reading, nil
}

// List returns the device's readings inside the optional window,
// newest first, capped at listingLimit rows.
func (s *TelemetryService) List(ctx context.Context, userID, slug string, start, end *time.Time) ([]models.TelemetryReading, error) {
	device, err := s.resolve(ctx, userID, slug)
	if err != nil {
		return nil, err
	}

	readings, err := s.telemetry.Query(ctx, []string{device.ID}, start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying telemetry: %w", err)
	}

	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Timestamp.After(readings[j].Timestamp)
	})
	if len(readings) > listingLimit {
		readings = readings[:listingLimit]
	}
	return readings, nil
}

// Summary returns the device's total over the optional window. An empty
// window is a valid result with a total of 0.0, never an error.
func (s *TelemetryService) Summary(ctx context.Context, userID, slug string, start, end *time.Time) (models.SummaryResponse, error) {
	device, err := s.resolve(ctx, userID, slug)
	if err != nil {
		return models.SummaryResponse{}, err
	}

	readings, err := s.telemetry.Query(ctx, []string{device.ID}, start, end)
	if err != nil {
		return models.SummaryResponse{}, fmt.Errorf("error querying telemetry: %w", err)
	}

	var total float64
	for _, reading := range readings {
		total += reading.EnergyKWh
	}

	return models.SummaryResponse{
		DeviceID: device.ID,
		TotalKWh: round4(total),
	}, nil
}

func (s *TelemetryService) resolve(ctx context.Context, userID, slug string) (models.Device, error) {
	device, err := s.devices.Resolve(ctx, userID, slug)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return models.Device{}, deviceNotFound(slug)
		}
		return models.Device{}, fmt.Errorf("error resolving device: %w", err)
	}
	return device, nil
}
