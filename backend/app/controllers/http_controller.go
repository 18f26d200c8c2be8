package controllers

import (
	"encoding/json"
	"net/http"

	"droidsweep/backend/app/dto"
	"droidsweep/backend/state"
)

type HTTPController struct{}

func NewHTTPController() *HTTPController {
	return &HTTPController{}
}

func (c *HTTPController) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

// Demo flips the process-wide simulation flag. While it is on the gateway
// logs nothing; the demo transport is responsible for its own entries.
func (c *HTTPController) Demo(w http.ResponseWriter, r *http.Request) {
	var req dto.DemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	state.SetDemoMode(req.Enabled)
	w.WriteHeader(http.StatusOK)
}
