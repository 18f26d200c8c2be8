package controllers

import (
	"encoding/json"
	"net/http"

	"droidsweep/backend/app/audit"
	"droidsweep/backend/app/dto"
	"droidsweep/backend/app/services"
)

type AuditController struct {
	Engine *audit.Engine
	Audits *services.AuditService
}

func NewAuditController(e *audit.Engine, s *services.AuditService) *AuditController {
	return &AuditController{Engine: e, Audits: s}
}

func (c *AuditController) Pending(w http.ResponseWriter, r *http.Request) {
	audits, err := c.Audits.ListPending()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(audits)
}

func (c *AuditController) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyAuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AuditID == "" || req.DeviceID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	tally, err := c.Engine.Apply(r.Context(), req.AuditID, req.DeviceID)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(dto.TallyResponse{Succeeded: tally.Succeeded, Failed: tally.Failed, Errors: tally.Errors})
}
