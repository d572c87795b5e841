package device

import (
	"time"

	"github.com/google/uuid"
)

// Check records a completed maintenance inspection for a device. Checks are
// immutable once created; they are deleted only as a cascade of device
// deletion.
type Check struct {
	ID            uuid.UUID
	DeviceID      uuid.UUID
	CheckedBy     uuid.UUID
	ScheduledDate time.Time
	CompletedDate time.Time
	Status        CheckStatus
	CheckComment  *string
	IsDelayed     bool
	CreatedAt     time.Time
}

// CheckStatus classifies a check at creation time. There are no transitions.
type CheckStatus string

const (
	CheckCompleted CheckStatus = "completed"
	CheckDelayed   CheckStatus = "delayed"
	CheckOverdue   CheckStatus = "overdue"
)
