package maintenance

import (
	"time"

	"github.com/google/uuid"
	domainDevice "maintenance-tracker/internal/domain/device"
	domainEmployee "maintenance-tracker/internal/domain/employee"
	"maintenance-tracker/internal/domain/schedule"
)

// DeviceWithSchedule is a device annotated with its derived maintenance view.
// It is computed on every read and never persisted.
type DeviceWithSchedule struct {
	ID                    uuid.UUID                 `json:"id"`
	Name                  string                    `json:"name"`
	IdentificationNumber  string                    `json:"identification_number"`
	Location              string                    `json:"location"`
	PlannedFrequencyWeeks int                       `json:"planned_frequency_weeks"`
	PlanComment           *string                   `json:"plan_comment"`
	Status                domainDevice.DeviceStatus `json:"status"`
	CreatedBy             *uuid.UUID                `json:"created_by"`
	CreatedAt             time.Time                 `json:"created_at"`
	UpdatedAt             time.Time                 `json:"updated_at"`
	LastCheck             *CheckResponse            `json:"last_check"`
	NextScheduledCheck    time.Time                 `json:"next_scheduled_check"`
	IsOverdue             bool                      `json:"is_overdue"`
}

type CheckResponse struct {
	ID            uuid.UUID                `json:"id"`
	DeviceID      uuid.UUID                `json:"device_id"`
	CheckedBy     uuid.UUID                `json:"checked_by"`
	ScheduledDate time.Time                `json:"scheduled_date"`
	CompletedDate time.Time                `json:"completed_date"`
	Status        domainDevice.CheckStatus `json:"status"`
	CheckComment  *string                  `json:"check_comment"`
	IsDelayed     bool                     `json:"is_delayed"`
	CreatedAt     time.Time                `json:"created_at"`
}

// DeviceSummary identifies the device a check belongs to without repeating
// the full schedule view.
type DeviceSummary struct {
	ID                   uuid.UUID                 `json:"id"`
	Name                 string                    `json:"name"`
	IdentificationNumber string                    `json:"identification_number"`
	Location             string                    `json:"location"`
	Status               domainDevice.DeviceStatus `json:"status"`
}

type EmployeeSummary struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
}

// CheckWithRelations annotates a check with its device and the employee who
// performed it.
type CheckWithRelations struct {
	CheckResponse
	Device    *DeviceSummary   `json:"device"`
	CheckedBy *EmployeeSummary `json:"checked_by_employee"`
}

type DashboardStats struct {
	TotalDevices      int                  `json:"total_devices"`
	ActiveDevices     int                  `json:"active_devices"`
	OverdueChecks     int                  `json:"overdue_checks"`
	CompletedThisWeek int                  `json:"completed_this_week"`
	DevicesByLocation map[string]int       `json:"devices_by_location"`
	RecentChecks      []CheckWithRelations `json:"recent_checks"`
}

type RecordCheckRequest struct {
	DeviceID     uuid.UUID `json:"device_id" validate:"required"`
	CheckComment *string   `json:"check_comment" validate:"omitempty,max=1000"`
}

func toCheckResponse(c *domainDevice.Check) *CheckResponse {
	if c == nil {
		return nil
	}
	return &CheckResponse{
		ID:            c.ID,
		DeviceID:      c.DeviceID,
		CheckedBy:     c.CheckedBy,
		ScheduledDate: c.ScheduledDate,
		CompletedDate: c.CompletedDate,
		Status:        c.Status,
		CheckComment:  c.CheckComment,
		IsDelayed:     c.IsDelayed,
		CreatedAt:     c.CreatedAt,
	}
}

func toDeviceSummary(d *domainDevice.Device) *DeviceSummary {
	if d == nil {
		return nil
	}
	return &DeviceSummary{
		ID:                   d.ID,
		Name:                 d.Name,
		IdentificationNumber: d.IdentificationNumber,
		Location:             d.Location,
		Status:               d.Status,
	}
}

func toEmployeeSummary(e *domainEmployee.Employee) *EmployeeSummary {
	if e == nil {
		return nil
	}
	return &EmployeeSummary{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
	}
}

func toDeviceWithSchedule(d *domainDevice.Device, sched schedule.Schedule) DeviceWithSchedule {
	return DeviceWithSchedule{
		ID:                    d.ID,
		Name:                  d.Name,
		IdentificationNumber:  d.IdentificationNumber,
		Location:              d.Location,
		PlannedFrequencyWeeks: d.PlannedFrequencyWeeks,
		PlanComment:           d.PlanComment,
		Status:                d.Status,
		CreatedBy:             d.CreatedBy,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
		LastCheck:             toCheckResponse(sched.LastCheck),
		NextScheduledCheck:    sched.NextScheduledCheck,
		IsOverdue:             sched.IsOverdue,
	}
}
