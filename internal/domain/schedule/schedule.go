// Package schedule derives maintenance due dates from a device's check
// history. It is pure: no clock reads, no I/O, safe for concurrent use.
package schedule

import (
	"errors"
	"time"

	domainDevice "maintenance-tracker/internal/domain/device"
)

// ErrInvalidConfiguration is returned when a device carries a planned
// frequency below one week. Upstream validation should make this impossible;
// the engine still refuses to produce a nonsensical date.
var ErrInvalidConfiguration = errors.New("planned frequency must be at least 1 week")

// Week is a fixed seven-day offset. Due dates are computed with constant
// arithmetic rather than calendar-week addition, so they never shift under
// DST transitions.
const Week = 7 * 24 * time.Hour

// Schedule is the derived maintenance view of a single device. It is
// recomputed on every read and never persisted, so it always reflects the
// current check history and the supplied evaluation time.
type Schedule struct {
	LastCheck          *domainDevice.Check
	NextScheduledCheck time.Time
	IsOverdue          bool
}

// Compute determines the next due date and overdue classification for a
// device evaluated at now.
//
// The anchor date is the most recent completed check, or the device's
// creation time when no checks exist — a freshly created device becomes due
// one full cycle after creation, not immediately. A device is overdue only
// when the due date is strictly before now.
func Compute(plannedFrequencyWeeks int, createdAt time.Time, checks []*domainDevice.Check, now time.Time) (Schedule, error) {
	if plannedFrequencyWeeks < 1 {
		return Schedule{}, ErrInvalidConfiguration
	}

	last := latestCheck(checks)

	baseDate := createdAt
	if last != nil {
		baseDate = last.CompletedDate
	}

	next := baseDate.Add(time.Duration(plannedFrequencyWeeks) * Week)

	return Schedule{
		LastCheck:          last,
		NextScheduledCheck: next,
		IsOverdue:          next.Before(now),
	}, nil
}

func latestCheck(checks []*domainDevice.Check) *domainDevice.Check {
	var last *domainDevice.Check
	for _, c := range checks {
		if c == nil {
			continue
		}
		if last == nil || c.CompletedDate.After(last.CompletedDate) {
			last = c
		}
	}
	return last
}
