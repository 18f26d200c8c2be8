package dto

import "droidsweep/backend/app/reconcile"

type DetectRequest struct {
	DeviceID          string `json:"device_id"`
	UpdateFingerprint string `json:"update_fingerprint,omitempty"`
}

type DetectResponse struct {
	Detection *reconcile.Detection `json:"detection,omitempty"`
}

type ResolveRequest struct {
	Detection *reconcile.Detection `json:"detection"`
	Selection []string             `json:"selection,omitempty"`
}

type DismissRequest struct {
	Detection *reconcile.Detection `json:"detection"`
}
