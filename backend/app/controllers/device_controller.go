package controllers

import (
	"encoding/json"
	"net/http"

	"droidsweep/backend/app/models"
	"droidsweep/backend/app/services"
	"droidsweep/backend/state"
)

type DeviceController struct{ Devices *services.DeviceService }

func NewDeviceController(devices *services.DeviceService) *DeviceController {
	return &DeviceController{Devices: devices}
}

type DeviceRequest struct {
	UUID           string `json:"uuid"`
	Name           string `json:"name"`
	Model          string `json:"model"`
	Manufacturer   string `json:"manufacturer"`
	AndroidVersion string `json:"android_version"`
	Serial         string `json:"serial"`
}

func (c *DeviceController) List(w http.ResponseWriter, r *http.Request) {
	devices, err := c.Devices.ListAll()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(devices)
}

func (c *DeviceController) RegisterOrUpdate(w http.ResponseWriter, r *http.Request) {
	var req DeviceRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.UUID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	d := models.Device{UUID: req.UUID, Name: req.Name, Model: req.Model, Manufacturer: req.Manufacturer, AndroidVersion: req.AndroidVersion, Serial: req.Serial}
	if err := c.Devices.UpsertDevice(&d); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	state.SetActiveDevice(d.UUID)
	_ = json.NewEncoder(w).Encode(d)
}
