package models

import "time"

type Device struct {
	ID             uint   `gorm:"primaryKey"`
	UUID           string `gorm:"uniqueIndex;size:191;not null"`
	Name           string `gorm:"size:255"`
	UserID         uint   `gorm:"index"`
	Model          string `gorm:"size:128"`
	Manufacturer   string `gorm:"size:128"`
	AndroidVersion string `gorm:"size:64"`
	Serial         string `gorm:"size:128"`
	LastSeen       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
