package service

import (
	"context"
	"time"

	"WattChat.influxDB/internal/models"
	"WattChat.influxDB/internal/repository"
)

// fakeDirectory is an in-memory DeviceDirectory for tests.
type fakeDirectory struct {
	devices []models.Device
}

func (f *fakeDirectory) Register(ctx context.Context, device models.Device) error {
	for _, d := range f.devices {
		if d.UserID == device.UserID && d.Slug == device.Slug {
			return repository.ErrDeviceExists
		}
	}
	f.devices = append(f.devices, device)
	return nil
}

func (f *fakeDirectory) Resolve(ctx context.Context, userID, slug string) (models.Device, error) {
	for _, d := range f.devices {
		if d.UserID == userID && d.Slug == slug {
			return d, nil
		}
	}
	return models.Device{}, repository.ErrDeviceNotFound
}

func (f *fakeDirectory) ListOwned(ctx context.Context, userID string) ([]models.Device, error) {
	var owned []models.Device
	for _, d := range f.devices {
		if d.UserID == userID {
			owned = append(owned, d)
		}
	}
	return owned, nil
}

func (f *fakeDirectory) Rename(ctx context.Context, userID, slug, name string) (models.Device, error) {
	for i, d := range f.devices {
		if d.UserID == userID && d.Slug == slug {
			f.devices[i].Name = name
			return f.devices[i], nil
		}
	}
	return models.Device{}, repository.ErrDeviceNotFound
}

func (f *fakeDirectory) Delete(ctx context.Context, userID, slug string) (models.Device, error) {
	for i, d := range f.devices {
		if d.UserID == userID && d.Slug == slug {
			f.devices = append(f.devices[:i], f.devices[i+1:]...)
			return d, nil
		}
	}
	return models.Device{}, repository.ErrDeviceNotFound
}

// fakeStore is an in-memory TelemetryStore with the same half-open
// window contract as the InfluxDB repository: start inclusive, end
// exclusive.
type fakeStore struct {
	readings []models.TelemetryReading
	deleted  []string
}

func (f *fakeStore) Append(ctx context.Context, deviceID string, timestamp time.Time, energyKWh float64) error {
	f.readings = append(f.readings, models.TelemetryReading{
		DeviceID:  deviceID,
		Timestamp: timestamp,
		EnergyKWh: energyKWh,
	})
	return nil
}

func (f *fakeStore) Query(ctx context.Context, deviceIDs []string, start, end *time.Time) ([]models.TelemetryReading, error) {
	wanted := make(map[string]bool, len(deviceIDs))
	for _, id := range deviceIDs {
		wanted[id] = true
	}

	var out []models.TelemetryReading
	for _, r := range f.readings {
		if !wanted[r.DeviceID] {
			continue
		}
		if start != nil && r.Timestamp.Before(*start) {
			continue
		}
		if end != nil && !r.Timestamp.Before(*end) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeStore) DeleteByDevice(ctx context.Context, deviceID string) error {
	f.deleted = append(f.deleted, deviceID)
	var kept []models.TelemetryReading
	for _, r := range f.readings {
		if r.DeviceID != deviceID {
			kept = append(kept, r)
		}
	}
	f.readings = kept
	return nil
}
