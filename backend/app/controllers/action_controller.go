package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"droidsweep/backend/app/batch"
	"droidsweep/backend/app/dto"
	"droidsweep/backend/app/services"
)

type ActionController struct {
	Actions   *services.ActionService
	Toggles   *services.ToggleService
	StepDelay time.Duration
}

func NewActionController(a *services.ActionService, t *services.ToggleService, stepDelay time.Duration) *ActionController {
	return &ActionController{Actions: a, Toggles: t, StepDelay: stepDelay}
}

func (c *ActionController) List(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	actions, err := c.Actions.ForDevice(deviceID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	disabled := services.FoldDisabled(actions)
	_ = json.NewEncoder(w).Encode(dto.ActionsResponse{Actions: actions, Disabled: disabled})
}

// ListByUser returns the full action history across every device the user
// has touched.
func (c *ActionController) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 32)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	actions, err := c.Actions.ForUser(uint(userID))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(actions)
}

func (c *ActionController) Toggle(w http.ResponseWriter, r *http.Request) {
	var req dto.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DeviceID == "" || req.Package == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Toggles.Toggle(r.Context(), req.DeviceID, req.Package, req.Enable); err != nil {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusOK)
}

// RestoreAll re-enables everything the device's history says is disabled,
// one package at a time against the single-in-flight transport.
func (c *ActionController) RestoreAll(w http.ResponseWriter, r *http.Request) {
	var req dto.RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DeviceID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	disabled, err := c.Actions.DisabledPackages(req.DeviceID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	tally := batch.Run(r.Context(), disabled, c.StepDelay, func(ctx context.Context, pkg string) error {
		return c.Toggles.Toggle(ctx, req.DeviceID, pkg, true)
	})
	_ = json.NewEncoder(w).Encode(dto.TallyResponse{Succeeded: tally.Succeeded, Failed: tally.Failed, Errors: tally.Errors})
}
