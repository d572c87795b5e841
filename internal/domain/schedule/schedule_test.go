package schedule

import (
	"testing"
	"time"

	domainDevice "maintenance-tracker/internal/domain/device"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheck(completed time.Time) *domainDevice.Check {
	return &domainDevice.Check{
		ID:            uuid.New(),
		DeviceID:      uuid.New(),
		CheckedBy:     uuid.New(),
		ScheduledDate: completed,
		CompletedDate: completed,
		Status:        domainDevice.CheckCompleted,
	}
}

func TestCompute_NoChecks_AnchorsOnCreation(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	now := createdAt.Add(24 * time.Hour)

	sched, err := Compute(2, createdAt, nil, now)
	require.NoError(t, err)

	assert.Nil(t, sched.LastCheck)
	assert.Equal(t, createdAt.Add(2*Week), sched.NextScheduledCheck)
	assert.False(t, sched.IsOverdue, "a fresh device is not due until one full cycle has passed")
}

func TestCompute_AnchorsOnLatestCheck(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	older := newCheck(createdAt.Add(1 * Week))
	newer := newCheck(createdAt.Add(3 * Week))
	now := createdAt.Add(4 * Week)

	sched, err := Compute(1, createdAt, []*domainDevice.Check{older, newer}, now)
	require.NoError(t, err)

	require.NotNil(t, sched.LastCheck)
	assert.Equal(t, newer.ID, sched.LastCheck.ID)
	assert.Equal(t, newer.CompletedDate.Add(1*Week), sched.NextScheduledCheck)
	assert.False(t, sched.IsOverdue)
}

func TestCompute_CheckOrderDoesNotMatter(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	a := newCheck(createdAt.Add(1 * Week))
	b := newCheck(createdAt.Add(2 * Week))
	c := newCheck(createdAt.Add(3 * Week))
	now := createdAt.Add(10 * Week)

	forward, err := Compute(1, createdAt, []*domainDevice.Check{a, b, c}, now)
	require.NoError(t, err)
	backward, err := Compute(1, createdAt, []*domainDevice.Check{c, b, a}, now)
	require.NoError(t, err)

	assert.Equal(t, forward.NextScheduledCheck, backward.NextScheduledCheck)
	assert.Equal(t, forward.LastCheck.ID, backward.LastCheck.ID)
}

func TestCompute_Overdue_StrictlyBeforeNow(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	due := createdAt.Add(1 * Week)

	// Exactly at the due instant: not yet overdue.
	sched, err := Compute(1, createdAt, nil, due)
	require.NoError(t, err)
	assert.False(t, sched.IsOverdue)

	// One nanosecond past: overdue.
	sched, err = Compute(1, createdAt, nil, due.Add(time.Nanosecond))
	require.NoError(t, err)
	assert.True(t, sched.IsOverdue)
}

func TestCompute_FixedOffsetIgnoresDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// Spring DST transition falls inside the cycle.
	createdAt := time.Date(2026, 3, 25, 9, 0, 0, 0, loc)
	sched, err := Compute(1, createdAt, nil, createdAt)
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, sched.NextScheduledCheck.Sub(createdAt))
}

func TestCompute_InvalidFrequency(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	for _, weeks := range []int{0, -1, -52} {
		_, err := Compute(weeks, createdAt, nil, createdAt)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}

func TestCompute_SkipsNilChecks(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	check := newCheck(createdAt.Add(1 * Week))
	now := createdAt.Add(2 * Week)

	sched, err := Compute(1, createdAt, []*domainDevice.Check{nil, check, nil}, now)
	require.NoError(t, err)

	require.NotNil(t, sched.LastCheck)
	assert.Equal(t, check.ID, sched.LastCheck.ID)
}

func TestCompute_LongFrequency(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	sched, err := Compute(52, createdAt, nil, createdAt)
	require.NoError(t, err)

	assert.Equal(t, createdAt.Add(52*Week), sched.NextScheduledCheck)
	assert.False(t, sched.IsOverdue)
}
