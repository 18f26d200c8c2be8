package dto

type ApplyAuditRequest struct {
	AuditID  string `json:"audit_id"`
	DeviceID string `json:"device_id"`
}

type DemoRequest struct {
	Enabled bool `json:"enabled"`
}
