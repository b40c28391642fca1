package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"WattChat.influxDB/internal/models"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

// TelemetryStore is the read/write boundary for energy readings.
// Query is always scoped to a caller-supplied device-id set, never
// global; both window bounds are optional and half-open: [start, end).
type TelemetryStore interface {
	Append(ctx context.Context, deviceID string, timestamp time.Time, energyKWh float64) error
	Query(ctx context.Context, deviceIDs []string, start, end *time.Time) ([]models.TelemetryReading, error)
	DeleteByDevice(ctx context.Context, deviceID string) error
}

const telemetryMeasurement = "telemetry"

// InfluxTelemetryRepository stores readings in a single InfluxDB bucket,
// tagged by device_id.
type InfluxTelemetryRepository struct {
	client influxdb2.Client
	org    string
	bucket string
}

// NewInfluxTelemetryRepository creates a repository on an existing client.
func NewInfluxTelemetryRepository(client influxdb2.Client, org, bucket string) *InfluxTelemetryRepository {
	return &InfluxTelemetryRepository{
		client: client,
		org:    org,
		bucket: bucket,
	}
}

// Append writes a single reading. Readings are append-only; there is no
// update path.
func (r *InfluxTelemetryRepository) Append(ctx context.Context, deviceID string, timestamp time.Time, energyKWh float64) error {
	writeAPI := r.client.WriteAPIBlocking(r.org, r.bucket)

	p := influxdb2.NewPoint(
		telemetryMeasurement,
		map[string]string{"device_id": deviceID},
		map[string]interface{}{"energy_kwh": energyKWh},
		timestamp.UTC(),
	)

	if err := writeAPI.WritePoint(ctx, p); err != nil {
		return fmt.Errorf("error writing to InfluxDB: %w", err)
	}
	return nil
}

// Query returns readings for the given devices inside the window,
// ordered ascending by time. Flux's range is inclusive of start and
// exclusive of stop, which carries the half-open window unchanged.
func (r *InfluxTelemetryRepository) Query(ctx context.Context, deviceIDs []string, start, end *time.Time) ([]models.TelemetryReading, error) {
	if len(deviceIDs) == 0 {
		return nil, nil
	}
	queryAPI := r.client.QueryAPI(r.org)

	rangeStart := "0"
	if start != nil {
		rangeStart = start.UTC().Format(time.RFC3339Nano)
	}
	rangeStop := "now()"
	if end != nil {
		rangeStop = end.UTC().Format(time.RFC3339Nano)
	}

	deviceFilters := make([]string, len(deviceIDs))
	for i, id := range deviceIDs {
		deviceFilters[i] = fmt.Sprintf(`r["device_id"] == "%s"`, id)
	}
	deviceFilterClause := strings.Join(deviceFilters, " or ")

	fluxQuery := fmt.Sprintf(`
		from(bucket: "%s")
		|> range(start: %s, stop: %s)
		|> filter(fn: (r) => r["_measurement"] == "%s")
		|> filter(fn: (r) => r["_field"] == "energy_kwh")
		|> filter(fn: (r) => %s)
		|> sort(columns: ["_time"])
	`, r.bucket, rangeStart, rangeStop, telemetryMeasurement, deviceFilterClause)

	result, err := queryAPI.Query(ctx, fluxQuery)
	if err != nil {
		log.Printf("Error querying InfluxDB: %v\nQuery: %s", err, fluxQuery)
		return nil, fmt.Errorf("error querying InfluxDB: %w", err)
	}

	var readings []models.TelemetryReading
	for result.Next() {
		record := result.Record()

		deviceID, ok := record.ValueByKey("device_id").(string)
		if !ok {
			continue
		}
		var value float64
		switch v := record.Value().(type) {
		case float64:
			value = v
		case int64:
			value = float64(v)
		default:
			continue
		}

		readings = append(readings, models.TelemetryReading{
			DeviceID:  deviceID,
			Timestamp: record.Time().UTC(),
			EnergyKWh: value,
		})
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("query error: %w", result.Err())
	}

	return readings, nil
}

// DeleteByDevice removes all readings for one device. Used when a
// device is deleted so telemetry cascades with it.
func (r *InfluxTelemetryRepository) DeleteByDevice(ctx context.Context, deviceID string) error {
	deleteAPI := r.client.DeleteAPI()
	predicate := fmt.Sprintf(`_measurement="%s" AND device_id="%s"`, telemetryMeasurement, deviceID)

	err := deleteAPI.DeleteWithName(ctx, r.org, r.bucket, time.Unix(0, 0), time.Now().UTC(), predicate)
	if err != nil {
		return fmt.Errorf("error deleting telemetry for device %s: %w", deviceID, err)
	}
	log.Printf("Deleted telemetry for device %s", deviceID)
	return nil
}
