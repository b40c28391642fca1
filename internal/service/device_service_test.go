package service

import (
	"context"
	"net/http"
	"testing"

	"WattChat.influxDB/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDerivesSlug(t *testing.T) {
	devices := &fakeDirectory{}
	svc := NewDeviceService(devices, &fakeStore{})

	device, err := svc.Register(context.Background(), "u1", models.DeviceRequest{Name: "Washing Machine"})
	require.NoError(t, err)
	assert.Equal(t, "washing-machine", device.Slug)
	assert.Equal(t, "Washing Machine", device.Name)
	assert.NotEmpty(t, device.ID)
	assert.Equal(t, "u1", device.UserID)
}

func TestRegisterDuplicateSlug(t *testing.T) {
	devices := &fakeDirectory{}
	svc := NewDeviceService(devices, &fakeStore{})

	_, err := svc.Register(context.Background(), "u1", models.DeviceRequest{Name: "Fridge"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "u1", models.DeviceRequest{Name: "Fridge"})
	apiErr := apiError(t, err)
	assert.Equal(t, models.ErrorCodeDuplicateResource, apiErr.Code)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	// The same slug is fine for a different user.
	_, err = svc.Register(context.Background(), "u2", models.DeviceRequest{Name: "Fridge"})
	require.NoError(t, err)
}

func TestRegisterRequiresName(t *testing.T) {
	svc := NewDeviceService(&fakeDirectory{}, &fakeStore{})

	_, err := svc.Register(context.Background(), "u1", models.DeviceRequest{Name: "  "})
	apiErr := apiError(t, err)
	assert.Equal(t, models.ErrorCodeMissingParameter, apiErr.Code)
}

func TestRenameKeepsSlug(t *testing.T) {
	devices := &fakeDirectory{}
	svc := NewDeviceService(devices, &fakeStore{})

	created, err := svc.Register(context.Background(), "u1", models.DeviceRequest{Name: "Fridge"})
	require.NoError(t, err)

	renamed, err := svc.Rename(context.Background(), "u1", "fridge", models.DeviceRequest{Name: "Kitchen Fridge"})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Fridge", renamed.Name)
	assert.Equal(t, created.Slug, renamed.Slug)
	assert.Equal(t, created.ID, renamed.ID)
}

func TestDeleteCascadesTelemetry(t *testing.T) {
	devices := &fakeDirectory{}
	store := &fakeStore{}
	svc := NewDeviceService(devices, store)

	device, err := svc.Register(context.Background(), "u1", models.DeviceRequest{Name: "Fridge"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "u1", "fridge"))
	assert.Equal(t, []string{device.ID}, store.deleted)

	err = svc.Delete(context.Background(), "u1", "fridge")
	apiErr := apiError(t, err)
	assert.Equal(t, models.ErrorCodeDeviceNotFound, apiErr.Code)
}
