package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"WattChat.influxDB/internal/models"
	"WattChat.influxDB/internal/repository"
	"WattChat.influxDB/internal/utils"
	"github.com/google/uuid"
)

// DeviceService handles device registration and lifecycle.
type DeviceService struct {
	devices   repository.DeviceDirectory
	telemetry repository.TelemetryStore
}

// NewDeviceService creates a new DeviceService.
func NewDeviceService(devices repository.DeviceDirectory, telemetry repository.TelemetryStore) *DeviceService {
	return &DeviceService{
		devices:   devices,
		telemetry: telemetry,
	}
}

// Register creates a device for the user. The slug is derived from the
// name when not supplied and must be unique per user.
func (s *DeviceService) Register(ctx context.Context, userID string, req models.DeviceRequest) (models.Device, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Device{}, models.NewAPIError(models.ErrorCodeMissingParameter, "name is required", nil, http.StatusBadRequest)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(name)
	}
	if slug == "" {
		return models.Device{}, models.NewAPIError(models.ErrorCodeValidationFailed, "could not derive a slug from name", nil, http.StatusBadRequest)
	}

	device := models.Device{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Slug:   slug,
	}

	if err := s.devices.Register(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDeviceExists) {
			return models.Device{}, models.NewAPIError(models.ErrorCodeDuplicateResource,
				fmt.Sprintf("Device '%s' already exists.", slug), nil, http.StatusConflict)
		}
		return models.Device{}, fmt.Errorf("error registering device: %w", err)
	}

	return device, nil
}

// List returns all of the user's devices.
func (s *DeviceService) List(ctx context.Context, userID string) ([]models.Device, error) {
	devices, err := s.devices.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}
	return devices, nil
}

// Rename updates the human name of a device. The slug stays stable.
func (s *DeviceService) Rename(ctx context.Context, userID, slug string, req models.DeviceRequest) (models.Device, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Device{}, models.NewAPIError(models.ErrorCodeMissingParameter, "name is required", nil, http.StatusBadRequest)
	}

	device, err := s.devices.Rename(ctx, userID, slug, name)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return models.Device{}, deviceNotFound(slug)
		}
		return models.Device{}, fmt.Errorf("error renaming device: %w", err)
	}
	return device, nil
}

// Delete removes a device and cascades the delete to its telemetry.
func (s *DeviceService) Delete(ctx context.Context, userID, slug string) error {
	device, err := s.devices.Delete(ctx, userID, slug)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return deviceNotFound(slug)
		}
		return fmt.Errorf("error deleting device: %w", err)
	}

	if err := s.telemetry.DeleteByDevice(ctx, device.ID); err != nil {
		return fmt.Errorf("error cascading telemetry delete: %w", err)
	}
	return nil
}

func deviceNotFound(slug string) models.APIError {
	return models.NewAPIError(models.ErrorCodeDeviceNotFound,
		fmt.Sprintf("Device '%s' not found for user.", slug), nil, http.StatusNotFound)
}
