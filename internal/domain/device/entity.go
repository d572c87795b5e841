package device

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a piece of equipment tracked for periodic maintenance.
type Device struct {
	ID                    uuid.UUID
	Name                  string
	IdentificationNumber  string
	Location              string
	PlannedFrequencyWeeks int
	PlanComment           *string
	Status                DeviceStatus
	CreatedBy             *uuid.UUID
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// DeviceStatus represents the operational status of a device.
type DeviceStatus string

const (
	StatusActive      DeviceStatus = "active"
	StatusInactive    DeviceStatus = "inactive"
	StatusMaintenance DeviceStatus = "maintenance"
)

// ValidStatus reports whether s is one of the known device statuses.
func ValidStatus(s DeviceStatus) bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance:
		return true
	}
	return false
}
