package models

// Device represents a registered appliance owned by a single user.
// Devices are addressed by slug within that user's scope; the slug is
// stable once telemetry references the device, only the name may change.
type Device struct {
	ID     string `json:"id"`
	UserID string `json:"-"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
}

// DeviceRequest is the payload for registering or renaming a device.
// Slug is optional on registration; it is derived from Name when empty.
type DeviceRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}
