package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"droidsweep/backend/app/cmdlog"
	"droidsweep/backend/app/dto"
)

// renderCap limits how many entries one list response carries. Purely a view
// concern; Download always exports the store's full retained history.
const renderCap = 100

type LogController struct{ Log *cmdlog.Store }

func NewLogController(s *cmdlog.Store) *LogController { return &LogController{Log: s} }

func (c *LogController) List(w http.ResponseWriter, r *http.Request) {
	limit := renderCap
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}
	entries := c.Log.Visible()
	if len(entries) > limit {
		entries = entries[:limit]
	}
	// hidden covers everything TotalCommands counts but this page omits:
	// evicted entries, entries behind the clear marker, and render overflow
	hidden := int(c.Log.Total()) - len(entries)
	_ = json.NewEncoder(w).Encode(dto.CommandLogResponse{
		Entries:       entries,
		TotalCommands: c.Log.Total(),
		Hidden:        hidden,
	})
}

func (c *LogController) Download(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", `attachment; filename="command-log.ndjson"`)
	_ = c.Log.ExportAll(w)
}

func (c *LogController) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	marker := c.Log.EstablishClearMarker()
	_ = json.NewEncoder(w).Encode(dto.ClearLogResponse{Marker: marker})
}
