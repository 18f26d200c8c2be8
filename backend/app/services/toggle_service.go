package services

import (
	"context"

	"droidsweep/backend/app/gateway"
	"droidsweep/backend/app/models"
)

// ToggleService is the one package-toggle path. Interactive toggles, update
// reconciliation and audit replays all go through Toggle so every successful
// device-side change produces an identical recorder entry.
type ToggleService struct {
	Gateway *gateway.Gateway
	Actions *ActionService
}

func NewToggleService(g *gateway.Gateway, a *ActionService) *ToggleService {
	return &ToggleService{Gateway: g, Actions: a}
}

// Toggle flips the package on the device and records the action. A transport
// failure is returned; a recorder failure is not, since the device change
// already took effect.
func (s *ToggleService) Toggle(ctx context.Context, deviceID, pkg string, enable bool) error {
	if err := s.Gateway.TogglePackage(ctx, pkg, enable); err != nil {
		return err
	}
	kind := models.ActionDisable
	if enable {
		kind = models.ActionEnable
	}
	_ = s.Actions.Record(deviceID, pkg, kind) // warning only, already logged
	return nil
}
