package services

import (
	"droidsweep/backend/app/models"
	"droidsweep/backend/app/repo"
	"droidsweep/backend/global"
)

// ActionService is the device action recorder: a durable, append-only history
// of package-state changes, kept independently of the transient command log.
type ActionService struct {
	repo    *repo.UserActionRepository
	devices *repo.DeviceRepository
}

func NewActionService(r *repo.UserActionRepository, devices *repo.DeviceRepository) *ActionService {
	return &ActionService{repo: r, devices: devices}
}

// Record persists one action, attributed to the device's registered owner. A
// failed write is surfaced as a warning and a returned error, but callers
// must not treat it as fatal: the device-side change already happened and is
// not rolled back.
func (s *ActionService) Record(deviceID, pkg string, action models.ActionKind) error {
	a := models.UserAction{DeviceID: deviceID, PackageName: pkg, Action: action}
	if d, err := s.devices.FindByUUID(deviceID); err == nil {
		a.UserID = d.UserID
	}
	if err := s.repo.Create(&a); err != nil {
		global.Logger.Warn().Err(err).
			Str("device", deviceID).Str("package", pkg).Str("action", string(action)).
			Msg("action record failed; device state and history may diverge")
		return err
	}
	return nil
}

func (s *ActionService) ForDevice(deviceID string) ([]models.UserAction, error) {
	return s.repo.ListByDevice(deviceID)
}

func (s *ActionService) ForUser(userID uint) ([]models.UserAction, error) {
	return s.repo.ListByUser(userID)
}

// DisabledPackages folds the device's action history in ascending timestamp
// order into the set of packages currently believed disabled by this tool.
func (s *ActionService) DisabledPackages(deviceID string) ([]string, error) {
	actions, err := s.repo.ListByDevice(deviceID)
	if err != nil {
		return nil, err
	}
	return FoldDisabled(actions), nil
}

// FoldDisabled applies disable/uninstall as true and enable/reinstall as
// false per package, in the order given. The input must already be sorted
// ascending by created_at.
func FoldDisabled(actions []models.UserAction) []string {
	disabled := map[string]bool{}
	seen := map[string]bool{}
	var order []string
	for _, a := range actions {
		switch a.Action {
		case models.ActionDisable, models.ActionUninstall:
			if !seen[a.PackageName] {
				seen[a.PackageName] = true
				order = append(order, a.PackageName)
			}
			disabled[a.PackageName] = true
		case models.ActionEnable, models.ActionReinstall:
			disabled[a.PackageName] = false
		}
	}
	var out []string
	for _, pkg := range order {
		if disabled[pkg] {
			out = append(out, pkg)
		}
	}
	return out
}
