package maintenance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDevice "maintenance-tracker/internal/domain/device"
	domainEmployee "maintenance-tracker/internal/domain/employee"
	"maintenance-tracker/internal/domain/schedule"
	"maintenance-tracker/internal/logger"
	appErrors "maintenance-tracker/pkg/errors"
	"maintenance-tracker/pkg/utils"
)

// DefaultUpcomingWindowDays is the look-ahead used when a caller does not
// specify one.
const DefaultUpcomingWindowDays = 7

// recentChecksCap limits how many trailing-week checks the dashboard carries.
const recentChecksCap = 10

// Service answers schedule-derived maintenance queries and records completed
// checks. All classification is recomputed from raw check history on every
// call; nothing derived is cached or persisted.
type Service struct {
	deviceRepo   domainDevice.Repository
	checkRepo    domainDevice.CheckRepository
	employeeRepo domainEmployee.Repository
}

// NewService creates a new maintenance service
func NewService(
	deviceRepo domainDevice.Repository,
	checkRepo domainDevice.CheckRepository,
	employeeRepo domainEmployee.Repository,
) *Service {
	return &Service{
		deviceRepo:   deviceRepo,
		checkRepo:    checkRepo,
		employeeRepo: employeeRepo,
	}
}

// GetDevice returns one device with its schedule evaluated at now.
func (s *Service) GetDevice(ctx context.Context, deviceID uuid.UUID, now time.Time) (*DeviceWithSchedule, error) {
	d, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	sched, err := s.scheduleFor(ctx, d, now)
	if err != nil {
		return nil, err
	}

	resp := toDeviceWithSchedule(d, sched)
	return &resp, nil
}

// ListByLocation returns all devices with their schedules, optionally
// filtered by exact-match location.
func (s *Service) ListByLocation(ctx context.Context, location *string, now time.Time) ([]DeviceWithSchedule, error) {
	filter := &domainDevice.Filter{Location: location}
	return s.list(ctx, filter, now)
}

// ListOverdue returns all devices whose next due date has passed, ordered by
// next due date ascending (ties broken by device ID for a stable order).
func (s *Service) ListOverdue(ctx context.Context, now time.Time) ([]DeviceWithSchedule, error) {
	all, err := s.list(ctx, &domainDevice.Filter{}, now)
	if err != nil {
		return nil, err
	}

	overdue := make([]DeviceWithSchedule, 0, len(all))
	for _, d := range all {
		if d.IsOverdue {
			overdue = append(overdue, d)
		}
	}
	return overdue, nil
}

// ListUpcoming returns devices due within the next daysAhead days that are
// not yet overdue. The window is inclusive on both ends, so the result is
// always disjoint from ListOverdue for the same now.
func (s *Service) ListUpcoming(ctx context.Context, daysAhead int, now time.Time) ([]DeviceWithSchedule, error) {
	if daysAhead <= 0 {
		return nil, fmt.Errorf("%w: days_ahead must be positive, got %d", appErrors.ErrInvalidArgument, daysAhead)
	}

	all, err := s.list(ctx, &domainDevice.Filter{}, now)
	if err != nil {
		return nil, err
	}

	horizon := now.Add(time.Duration(daysAhead) * 24 * time.Hour)

	upcoming := make([]DeviceWithSchedule, 0, len(all))
	for _, d := range all {
		if d.IsOverdue {
			continue
		}
		if d.NextScheduledCheck.Before(now) || d.NextScheduledCheck.After(horizon) {
			continue
		}
		upcoming = append(upcoming, d)
	}
	return upcoming, nil
}

// Locations returns all distinct device location labels.
func (s *Service) Locations(ctx context.Context) ([]string, error) {
	return s.deviceRepo.Locations(ctx)
}

// DashboardStats aggregates the full device population at now.
func (s *Service) DashboardStats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	devices, err := s.list(ctx, &domainDevice.Filter{}, now)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalDevices:      len(devices),
		DevicesByLocation: make(map[string]int),
		RecentChecks:      []CheckWithRelations{},
	}

	for _, d := range devices {
		if d.Status == domainDevice.StatusActive {
			stats.ActiveDevices++
		}
		if d.IsOverdue {
			stats.OverdueChecks++
		}
		stats.DevicesByLocation[d.Location]++
	}

	weekAgo := now.Add(-schedule.Week)
	recent, err := s.checkRepo.ListCompletedSince(ctx, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent checks: %w", err)
	}
	stats.CompletedThisWeek = len(recent)

	if len(recent) > recentChecksCap {
		recent = recent[:recentChecksCap]
	}
	annotated, err := s.annotate(ctx, recent)
	if err != nil {
		return nil, err
	}
	stats.RecentChecks = annotated

	return stats, nil
}

// RecordCheck records a completed maintenance check for a device at now.
//
// The check's scheduled date is the device's current next due date. A device
// with no prior checks anchors to now minus one full cycle, so its first
// check always classifies as delayed — behavior inherited from the planning
// workflow and kept intentionally.
func (s *Service) RecordCheck(ctx context.Context, req *RecordCheckRequest, performedBy uuid.UUID, now time.Time) (*CheckWithRelations, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	d, err := s.deviceRepo.GetByID(ctx, req.DeviceID)
	if err != nil {
		return nil, err
	}

	checks, err := s.checkRepo.ListByDevice(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load checks: %w", err)
	}

	sched, err := schedule.Compute(d.PlannedFrequencyWeeks, d.CreatedAt, checks, now)
	if err != nil {
		return nil, err
	}

	scheduledDate := sched.NextScheduledCheck
	if sched.LastCheck == nil {
		cycle := time.Duration(d.PlannedFrequencyWeeks) * schedule.Week
		scheduledDate = now.Add(-cycle)
	}

	status := domainDevice.CheckCompleted
	delayed := now.After(scheduledDate)
	if delayed {
		status = domainDevice.CheckDelayed
	}

	check := &domainDevice.Check{
		DeviceID:      d.ID,
		CheckedBy:     performedBy,
		ScheduledDate: scheduledDate,
		CompletedDate: now,
		Status:        status,
		CheckComment:  req.CheckComment,
		IsDelayed:     delayed,
	}

	if err := s.checkRepo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to record check: %w", err)
	}

	logger.Info("Device check recorded",
		zap.String("device_id", d.ID.String()),
		zap.String("check_id", check.ID.String()),
		zap.String("status", string(status)),
		zap.String("event", "check_recorded"),
	)

	annotated, err := s.annotate(ctx, []*domainDevice.Check{check})
	if err != nil {
		return nil, err
	}
	return &annotated[0], nil
}

// ListChecks returns check history, optionally restricted to one device,
// most recent completion first.
func (s *Service) ListChecks(ctx context.Context, deviceID *uuid.UUID) ([]CheckWithRelations, error) {
	var (
		checks []*domainDevice.Check
		err    error
	)
	if deviceID != nil {
		checks, err = s.checkRepo.ListByDevice(ctx, *deviceID)
	} else {
		checks, err = s.checkRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checks: %w", err)
	}

	sort.SliceStable(checks, func(i, j int) bool {
		return checks[i].CompletedDate.After(checks[j].CompletedDate)
	})

	return s.annotate(ctx, checks)
}

// list fetches devices, computes each schedule at now and orders the result
// by next due date ascending, device ID as tiebreaker.
func (s *Service) list(ctx context.Context, filter *domainDevice.Filter, now time.Time) ([]DeviceWithSchedule, error) {
	devices, err := s.deviceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	result := make([]DeviceWithSchedule, 0, len(devices))
	for _, d := range devices {
		sched, err := s.scheduleFor(ctx, d, now)
		if err != nil {
			return nil, err
		}
		result = append(result, toDeviceWithSchedule(d, sched))
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].NextScheduledCheck.Equal(result[j].NextScheduledCheck) {
			return result[i].ID.String() < result[j].ID.String()
		}
		return result[i].NextScheduledCheck.Before(result[j].NextScheduledCheck)
	})

	return result, nil
}

func (s *Service) scheduleFor(ctx context.Context, d *domainDevice.Device, now time.Time) (schedule.Schedule, error) {
	checks, err := s.checkRepo.ListByDevice(ctx, d.ID)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to load checks: %w", err)
	}
	return schedule.Compute(d.PlannedFrequencyWeeks, d.CreatedAt, checks, now)
}

// annotate resolves each check's device and employee, reusing lookups within
// one call.
func (s *Service) annotate(ctx context.Context, checks []*domainDevice.Check) ([]CheckWithRelations, error) {
	devices := make(map[uuid.UUID]*DeviceSummary)
	employees := make(map[uuid.UUID]*EmployeeSummary)

	result := make([]CheckWithRelations, 0, len(checks))
	for _, c := range checks {
		dev, ok := devices[c.DeviceID]
		if !ok {
			d, err := s.deviceRepo.GetByID(ctx, c.DeviceID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve device for check: %w", err)
			}
			dev = toDeviceSummary(d)
			devices[c.DeviceID] = dev
		}

		emp, ok := employees[c.CheckedBy]
		if !ok {
			e, err := s.employeeRepo.GetByID(ctx, c.CheckedBy)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve employee for check: %w", err)
			}
			emp = toEmployeeSummary(e)
			employees[c.CheckedBy] = emp
		}

		result = append(result, CheckWithRelations{
			CheckResponse: *toCheckResponse(c),
			Device:        dev,
			CheckedBy:     emp,
		})
	}

	return result, nil
}
