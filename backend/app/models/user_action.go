package models

import "time"

type ActionKind string

const (
	ActionDisable   ActionKind = "disable"
	ActionEnable    ActionKind = "enable"
	ActionUninstall ActionKind = "uninstall"
	ActionReinstall ActionKind = "reinstall"
)

// UserAction is the durable record of one package-state change. Rows are
// append-only; for a (device, package) pair the newest created_at wins when
// deriving believed state.
type UserAction struct {
	ID          uint       `gorm:"primaryKey"`
	DeviceID    string     `gorm:"size:191;index:idx_device_pkg"`
	PackageName string     `gorm:"size:255;index:idx_device_pkg"`
	Action      ActionKind `gorm:"size:32"`
	UserID      uint       `gorm:"index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index"`
}
