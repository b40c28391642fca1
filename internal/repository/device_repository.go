package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"WattChat.influxDB/internal/models"
	"github.com/go-redis/redis/v8"
)

// ErrDeviceNotFound is returned when a slug resolves to no device in
// the requesting user's scope. A device owned by another user is
// indistinguishable from one that does not exist.
var ErrDeviceNotFound = errors.New("device not found")

// ErrDeviceExists is returned on a slug collision within one user.
var ErrDeviceExists = errors.New("device already exists")

// DeviceDirectory resolves and enumerates devices per user. Every key
// embeds the user id, so cross-user access is structurally impossible
// rather than merely filtered.
type DeviceDirectory interface {
	Register(ctx context.Context, device models.Device) error
	Resolve(ctx context.Context, userID, slug string) (models.Device, error)
	ListOwned(ctx context.Context, userID string) ([]models.Device, error)
	Rename(ctx context.Context, userID, slug, name string) (models.Device, error)
	Delete(ctx context.Context, userID, slug string) (models.Device, error)
}

// RedisDeviceRepository keeps one hash per device plus a per-user slug
// set for listing.
type RedisDeviceRepository struct {
	client *redis.Client
}

// NewRedisDeviceRepository creates a directory on an existing client.
func NewRedisDeviceRepository(client *redis.Client) *RedisDeviceRepository {
	return &RedisDeviceRepository{client: client}
}

func deviceKey(userID, slug string) string {
	return fmt.Sprintf("user:%s:device:%s", userID, slug)
}

func deviceIndexKey(userID string) string {
	return fmt.Sprintf("user:%s:devices", userID)
}

// Register stores a new device. The slug must be unused for this user.
func (r *RedisDeviceRepository) Register(ctx context.Context, device models.Device) error {
	key := deviceKey(device.UserID, device.Slug)

	// HSetNX on the id field doubles as the existence check.
	created, err := r.client.HSetNX(ctx, key, "id", device.ID).Result()
	if err != nil {
		return fmt.Errorf("error registering device: %w", err)
	}
	if !created {
		return ErrDeviceExists
	}

	if err := r.client.HSet(ctx, key, "name", device.Name).Err(); err != nil {
		return fmt.Errorf("error storing device name: %w", err)
	}
	if err := r.client.SAdd(ctx, deviceIndexKey(device.UserID), device.Slug).Err(); err != nil {
		return fmt.Errorf("error indexing device: %w", err)
	}
	return nil
}

// Resolve looks a slug up inside one user's scope.
func (r *RedisDeviceRepository) Resolve(ctx context.Context, userID, slug string) (models.Device, error) {
	fields, err := r.client.HGetAll(ctx, deviceKey(userID, slug)).Result()
	if err != nil {
		return models.Device{}, fmt.Errorf("error resolving device: %w", err)
	}
	if len(fields) == 0 {
		return models.Device{}, ErrDeviceNotFound
	}

	return models.Device{
		ID:     fields["id"],
		UserID: userID,
		Name:   fields["name"],
		Slug:   slug,
	}, nil
}

// ListOwned returns all of a user's devices, ordered by slug so output
// is deterministic.
func (r *RedisDeviceRepository) ListOwned(ctx context.Context, userID string) ([]models.Device, error) {
	slugs, err := r.client.SMembers(ctx, deviceIndexKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}
	sort.Strings(slugs)

	devices := make([]models.Device, 0, len(slugs))
	for _, slug := range slugs {
		device, err := r.Resolve(ctx, userID, slug)
		if err != nil {
			if errors.Is(err, ErrDeviceNotFound) {
				// Stale index entry; skip it.
				continue
			}
			return nil, err
		}
		devices = append(devices, device)
	}
	return devices, nil
}

// Rename changes the human name. The slug and id are immutable once a
// device has telemetry referencing them.
func (r *RedisDeviceRepository) Rename(ctx context.Context, userID, slug, name string) (models.Device, error) {
	device, err := r.Resolve(ctx, userID, slug)
	if err != nil {
		return models.Device{}, err
	}

	if err := r.client.HSet(ctx, deviceKey(userID, slug), "name", name).Err(); err != nil {
		return models.Device{}, fmt.Errorf("error renaming device: %w", err)
	}
	device.Name = name
	return device, nil
}

// Delete removes the device and returns it so the caller can cascade
// the telemetry delete.
func (r *RedisDeviceRepository) Delete(ctx context.Context, userID, slug string) (models.Device, error) {
	device, err := r.Resolve(ctx, userID, slug)
	if err != nil {
		return models.Device{}, err
	}

	if err := r.client.Del(ctx, deviceKey(userID, slug)).Err(); err != nil {
		return models.Device{}, fmt.Errorf("error deleting device: %w", err)
	}
	if err := r.client.SRem(ctx, deviceIndexKey(userID), slug).Err(); err != nil {
		return models.Device{}, fmt.Errorf("error unindexing device: %w", err)
	}
	return device, nil
}
