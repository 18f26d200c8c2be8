package models

import (
	"encoding/json"
	"time"
)

// MobileAudit is an externally produced package-recommendation manifest for
// one device model. Manifest contents are kept as raw JSON; the audit engine
// decodes them on apply. Executed flips to true exactly once.
type MobileAudit struct {
	ID           string    `gorm:"primaryKey;size:191"`
	DeviceModel  string    `gorm:"size:255"`
	ManifestData string    `gorm:"type:longtext"`
	Executed     bool      `gorm:"index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

type AuditResult struct {
	PackageID      string `json:"package_id"`
	Recommendation string `json:"recommendation"`
}

type AuditManifest struct {
	AuditResults []AuditResult `json:"audit_results"`
}

func (m *MobileAudit) Manifest() (AuditManifest, error) {
	var out AuditManifest
	err := json.Unmarshal([]byte(m.ManifestData), &out)
	return out, err
}
