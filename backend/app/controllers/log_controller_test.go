package controllers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"droidsweep/backend/app/cmdlog"
	"droidsweep/backend/app/dto"
)

func listLog(t *testing.T, c *LogController, target string) dto.CommandLogResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	c.List(rec, httptest.NewRequest("GET", target, nil))
	var res dto.CommandLogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return res
}

func TestListHiddenCountsClearedEntries(t *testing.T) {
	store := cmdlog.NewStore(10)
	for i := 0; i < 4; i++ {
		store.Add(fmt.Sprintf("getprop ro.old.%d", i), cmdlog.OutcomeSuccess, "")
	}
	store.EstablishClearMarker()
	store.Add("getprop ro.new.0", cmdlog.OutcomeSuccess, "")
	store.Add("getprop ro.new.1", cmdlog.OutcomeError, "boom")

	res := listLog(t, NewLogController(store), "/log")
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want the 2 post-clear ones", len(res.Entries))
	}
	if res.TotalCommands != 6 {
		t.Fatalf("TotalCommands = %d, want 6", res.TotalCommands)
	}
	if res.Hidden != 4 {
		t.Fatalf("Hidden = %d, want the 4 entries behind the clear marker", res.Hidden)
	}
}

func TestListHiddenCountsEvictionAndRenderOverflow(t *testing.T) {
	store := cmdlog.NewStore(3)
	for i := 0; i < 5; i++ {
		store.Add(fmt.Sprintf("getprop ro.n.%d", i), cmdlog.OutcomeSuccess, "")
	}

	res := listLog(t, NewLogController(store), "/log?limit=1")
	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(res.Entries))
	}
	// 2 evicted past the capacity bound plus 2 over the render limit
	if res.Hidden != 4 {
		t.Fatalf("Hidden = %d, want 4", res.Hidden)
	}
	if res.TotalCommands != 5 {
		t.Fatalf("TotalCommands = %d, want 5", res.TotalCommands)
	}
}
