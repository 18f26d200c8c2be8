package state

import "sync/atomic"

type appState struct {
	DemoMode     atomic.Bool
	ActiveDevice atomic.Value // string, device UUID
}

var s appState

func SetDemoMode(on bool) { s.DemoMode.Store(on) }
func DemoMode() bool      { return s.DemoMode.Load() }

func SetActiveDevice(id string) { s.ActiveDevice.Store(id) }
func ActiveDevice() string {
	if v := s.ActiveDevice.Load(); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
