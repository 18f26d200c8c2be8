package controllers

import (
	"encoding/json"
	"net/http"

	"droidsweep/backend/app/dto"
	"droidsweep/backend/app/reconcile"
)

type ReconcileController struct{ Engine *reconcile.Engine }

func NewReconcileController(e *reconcile.Engine) *ReconcileController {
	return &ReconcileController{Engine: e}
}

// Detect is invoked by whatever notices the system update (device poller,
// manual refresh). A 204 means nothing returned or the event was already
// acknowledged.
func (c *ReconcileController) Detect(w http.ResponseWriter, r *http.Request) {
	var req dto.DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DeviceID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	d, err := c.Engine.Detect(r.Context(), req.DeviceID, req.UpdateFingerprint)
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	if d == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	_ = json.NewEncoder(w).Encode(dto.DetectResponse{Detection: d})
}

func (c *ReconcileController) Resolve(w http.ResponseWriter, r *http.Request) {
	var req dto.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Detection == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	tally, err := c.Engine.Resolve(r.Context(), req.Detection, req.Selection)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(dto.TallyResponse{Succeeded: tally.Succeeded, Failed: tally.Failed, Errors: tally.Errors})
}

func (c *ReconcileController) Dismiss(w http.ResponseWriter, r *http.Request) {
	var req dto.DismissRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Detection == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Engine.Dismiss(r.Context(), req.Detection); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
