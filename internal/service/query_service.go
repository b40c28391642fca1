package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"WattChat.influxDB/internal/models"
	"WattChat.influxDB/internal/nlp"
	"WattChat.influxDB/internal/repository"
)

// rankingLimit caps a top_devices result.
const rankingLimit = 5

// QueryService interprets natural-language questions and executes the
// resulting structured query against the requesting user's telemetry.
type QueryService struct {
	devices   repository.DeviceDirectory
	telemetry repository.TelemetryStore
	now       func() time.Time
}

// NewQueryService creates a new QueryService.
func NewQueryService(devices repository.DeviceDirectory, telemetry repository.TelemetryStore) *QueryService {
	return &QueryService{
		devices:   devices,
		telemetry: telemetry,
		now:       time.Now,
	}
}

// InterpretAndExecute runs the full pipeline: question → structured
// query → aggregation result. Explicit bounds, when supplied, override
// the inferred ones independently of each other. The result is either a
// models.UsageResponse or a models.TopDevicesResponse.
func (s *QueryService) InterpretAndExecute(ctx context.Context, userID, question string, explicitStart, explicitEnd *time.Time) (interface{}, error) {
	if strings.TrimSpace(question) == "" {
		return nil, models.NewAPIError(models.ErrorCodeEmptyQuery, "Missing 'question'.", nil, http.StatusBadRequest)
	}

	query := nlp.ParseQuery(question, s.now())
	query = nlp.ApplyExplicitBounds(query, explicitStart, explicitEnd)

	switch query.Intent {
	case models.IntentTopDevices:
		return s.executeTopDevices(ctx, userID, query)
	default:
		// The classifier is total, so this is always total_usage.
		return s.executeTotalUsage(ctx, userID, query)
	}
}

func (s *QueryService) executeTotalUsage(ctx context.Context, userID string, query models.StructuredQuery) (*models.UsageResponse, error) {
	if query.DeviceSlug == "" {
		return nil, models.NewAPIError(models.ErrorCodeMissingDevice,
			"Please specify a device (e.g., 'my fridge', 'my AC').", nil, http.StatusBadRequest)
	}

	device, err := s.devices.Resolve(ctx, userID, query.DeviceSlug)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, deviceNotFound(query.DeviceSlug)
		}
		return nil, fmt.Errorf("error resolving device: %w", err)
	}

	readings, err := s.telemetry.Query(ctx, []string{device.ID}, query.Start, query.End)
	if err != nil {
		return nil, fmt.Errorf("error querying telemetry: %w", err)
	}

	// Sum and bucket in one pass; rounding happens only at the output
	// boundary so bucket sums never compound rounding error.
	var total float64
	buckets := make(map[time.Time]float64)
	for _, reading := range readings {
		total += reading.EnergyKWh
		hour := reading.Timestamp.UTC().Truncate(time.Hour)
		buckets[hour] += reading.EnergyKWh
	}

	hours := make([]time.Time, 0, len(buckets))
	for hour := range buckets {
		hours = append(hours, hour)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Before(hours[j]) })

	series := make([]models.SeriesPoint, 0, len(hours))
	for _, hour := range hours {
		series = append(series, models.SeriesPoint{
			Timestamp: hour,
			KWh:       round4(buckets[hour]),
		})
	}

	return &models.UsageResponse{
		Intent:  models.IntentTotalUsage,
		Device:  device,
		Window:  models.TimeWindow{Start: query.Start, End: query.End},
		Summary: models.UsageSummary{TotalKWh: round4(total)},
		Series:  series,
	}, nil
}

func (s *QueryService) executeTopDevices(ctx context.Context, userID string, query models.StructuredQuery) (*models.TopDevicesResponse, error) {
	owned, err := s.devices.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}

	deviceIDs := make([]string, 0, len(owned))
	byID := make(map[string]models.Device, len(owned))
	for _, device := range owned {
		deviceIDs = append(deviceIDs, device.ID)
		byID[device.ID] = device
	}

	readings, err := s.telemetry.Query(ctx, deviceIDs, query.Start, query.End)
	if err != nil {
		return nil, fmt.Errorf("error querying telemetry: %w", err)
	}

	totals := make(map[string]float64)
	for _, reading := range readings {
		totals[reading.DeviceID] += reading.EnergyKWh
	}

	// Sparse ranking: only devices with at least one reading in the
	// window appear, ranked by descending total with ties broken by
	// device id ascending.
	ranked := make([]string, 0, len(totals))
	for id := range totals {
		ranked = append(ranked, id)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if totals[ranked[i]] != totals[ranked[j]] {
			return totals[ranked[i]] > totals[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > rankingLimit {
		ranked = ranked[:rankingLimit]
	}

	devices := make([]models.DeviceUsage, 0, len(ranked))
	for _, id := range ranked {
		device := byID[id]
		devices = append(devices, models.DeviceUsage{
			ID:       device.ID,
			Name:     device.Name,
			Slug:     device.Slug,
			TotalKWh: round4(totals[id]),
		})
	}

	return &models.TopDevicesResponse{
		Intent:  models.IntentTopDevices,
		Window:  models.TimeWindow{Start: query.Start, End: query.End},
		Devices: devices,
	}, nil
}

// round4 rounds to 4 decimal places. Applied once, at the output
// boundary only.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
