package models

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel represents the database model for devices.
type DeviceModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                  string     `gorm:"type:varchar(255);not null"`
	IdentificationNumber  string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Location              string     `gorm:"type:varchar(255);not null;index"`
	PlannedFrequencyWeeks int        `gorm:"type:integer;not null"`
	PlanComment           *string    `gorm:"type:text"`
	Status                string     `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedBy             *uuid.UUID `gorm:"type:uuid"`
	CreatedAt             time.Time  `gorm:"not null"`
	UpdatedAt             time.Time  `gorm:"not null"`
}

func (DeviceModel) TableName() string {
	return "devices"
}

// CheckModel represents the database model for maintenance checks.
type CheckModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckedBy     uuid.UUID `gorm:"type:uuid;not null"`
	ScheduledDate time.Time `gorm:"not null"`
	CompletedDate time.Time `gorm:"not null;index"`
	Status        string    `gorm:"type:varchar(50);not null"`
	CheckComment  *string   `gorm:"type:text"`
	IsDelayed     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (CheckModel) TableName() string {
	return "device_checks"
}
