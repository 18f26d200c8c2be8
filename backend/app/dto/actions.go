package dto

import "droidsweep/backend/app/models"

type ToggleRequest struct {
	DeviceID string `json:"device_id"`
	Package  string `json:"package"`
	Enable   bool   `json:"enable"`
}

type ActionsResponse struct {
	Actions  []models.UserAction `json:"actions"`
	Disabled []string            `json:"disabled"`
}

type RestoreRequest struct {
	DeviceID string `json:"device_id"`
}

type TallyResponse struct {
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Errors    map[string]string `json:"errors,omitempty"`
}
