package controller

import (
	"encoding/json"
	"net/http"

	"WattChat.influxDB/internal/middleware"
	"WattChat.influxDB/internal/models"
	"WattChat.influxDB/internal/service"
	"WattChat.influxDB/internal/utils"
	"github.com/gorilla/mux"
)

// DeviceController handles device lifecycle and telemetry endpoints.
type DeviceController struct {
	devices   *service.DeviceService
	telemetry *service.TelemetryService
}

// NewDeviceController creates a new DeviceController.
func NewDeviceController(devices *service.DeviceService, telemetry *service.TelemetryService) *DeviceController {
	return &DeviceController{
		devices:   devices,
		telemetry: telemetry,
	}
}

// HandleRegister creates a device for the authenticated user.
func (c *DeviceController) HandleRegister(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req models.DeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeBadRequest, "Invalid request payload", nil, http.StatusBadRequest))
		return
	}
	defer r.Body.Close()

	device, err := c.devices.Register(r.Context(), userID, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, device)
}

// HandleList returns the authenticated user's devices.
func (c *DeviceController) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	devices, err := c.devices.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, devices)
}

// HandleRename updates a device's name.
func (c *DeviceController) HandleRename(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	slug := mux.Vars(r)["slug"]

	var req models.DeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeBadRequest, "Invalid request payload", nil, http.StatusBadRequest))
		return
	}
	defer r.Body.Close()

	device, err := c.devices.Rename(r.Context(), userID, slug, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, device)
}

// HandleDelete removes a device and its telemetry.
func (c *DeviceController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	slug := mux.Vars(r)["slug"]

	if err := c.devices.Delete(r.Context(), userID, slug); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Device deleted"})
}

// HandleRecordTelemetry appends one reading to a device.
func (c *DeviceController) HandleRecordTelemetry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	slug := mux.Vars(r)["slug"]

	var req models.TelemetryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeBadRequest, "Invalid request payload", nil, http.StatusBadRequest))
		return
	}
	defer r.Body.Close()

	reading, err := c.telemetry.Record(r.Context(), userID, slug, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, reading)
}

// HandleListTelemetry returns a device's readings, newest first.
func (c *DeviceController) HandleListTelemetry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	slug := mux.Vars(r)["slug"]

	start, end, err := parseWindow(r)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	readings, err := c.telemetry.List(r.Context(), userID, slug, start, end)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, readings)
}

// HandleSummary returns a device's total over an optional window.
func (c *DeviceController) HandleSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	slug := mux.Vars(r)["slug"]

	start, end, err := parseWindow(r)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	summary, err := c.telemetry.Summary(r.Context(), userID, slug, start, end)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := middleware.UserID(r)
	if userID == "" {
		utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeUnauthorized, "missing user identity", nil, http.StatusUnauthorized))
		return "", false
	}
	return userID, true
}
