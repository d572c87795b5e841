package device

import (
	"time"

	"github.com/google/uuid"
	domainDevice "maintenance-tracker/internal/domain/device"
)

type CreateDeviceRequest struct {
	Name                  string  `json:"name" validate:"required,min=2,max=255"`
	IdentificationNumber  string  `json:"identification_number" validate:"required,min=1,max=255"`
	Location              string  `json:"location" validate:"required,min=1,max=255"`
	PlannedFrequencyWeeks int     `json:"planned_frequency_weeks" validate:"required,min=1"`
	PlanComment           *string `json:"plan_comment" validate:"omitempty,max=1000"`
	Status                *string `json:"status" validate:"omitempty,device_status"`
}

type UpdateDeviceRequest struct {
	Name                  *string `json:"name" validate:"omitempty,min=2,max=255"`
	IdentificationNumber  *string `json:"identification_number" validate:"omitempty,min=1,max=255"`
	Location              *string `json:"location" validate:"omitempty,min=1,max=255"`
	PlannedFrequencyWeeks *int    `json:"planned_frequency_weeks" validate:"omitempty,min=1"`
	PlanComment           *string `json:"plan_comment" validate:"omitempty,max=1000"`
	Status                *string `json:"status" validate:"omitempty,device_status"`
}

type DeviceResponse struct {
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
}

func ToDeviceResponse(d *domainDevice.Device) *DeviceResponse {
	if d == nil {
		return nil
	}
	return &DeviceResponse{
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
	}
}
