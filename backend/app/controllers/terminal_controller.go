package controllers

import (
	"encoding/json"
	"net/http"

	"droidsweep/backend/app/dto"
	"droidsweep/backend/app/gateway"
	"droidsweep/backend/app/sanitize"
)

// TerminalController is the HTTP surface interactive command entry uses.
// Validation happens here so a rejection is logged exactly once and the
// transport is never touched for blocked commands.
type TerminalController struct{ Gateway *gateway.Gateway }

func NewTerminalController(g *gateway.Gateway) *TerminalController {
	return &TerminalController{Gateway: g}
}

func (c *TerminalController) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.TerminalCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	res := sanitize.ValidateTerminalCommand(req.Command)
	if !res.OK {
		c.Gateway.LogBlocked(req.Command, res.Reason)
		_ = json.NewEncoder(w).Encode(dto.TerminalCommandResponse{Accepted: false, Reason: res.Reason, ExitCode: -1})
		return
	}
	out, err := c.Gateway.Shell(r.Context(), res.Sanitized)
	if err != nil {
		_ = json.NewEncoder(w).Encode(dto.TerminalCommandResponse{Accepted: true, Command: res.Sanitized, Reason: err.Error(), ExitCode: -1})
		return
	}
	_ = json.NewEncoder(w).Encode(dto.TerminalCommandResponse{
		Accepted: true,
		Command:  res.Sanitized,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
		ExitCode: out.ExitCode,
	})
}

// SetDNS configures private DNS on the device. The hostname is validated
// before it is spliced into a settings command, so a settings value can never
// smuggle shell syntax.
func (c *TerminalController) SetDNS(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hostname string `json:"hostname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	host, err := sanitize.ValidateDNSHostname(req.Hostname)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	if _, err := c.Gateway.Shell(r.Context(), "settings put global private_dns_mode hostname"); err != nil {
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	if _, err := c.Gateway.Shell(r.Context(), "settings put global private_dns_specifier "+host); err != nil {
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusOK)
}
