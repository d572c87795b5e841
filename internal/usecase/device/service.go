package device

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDevice "maintenance-tracker/internal/domain/device"
	"maintenance-tracker/internal/logger"
	appErrors "maintenance-tracker/pkg/errors"
	"maintenance-tracker/pkg/utils"
)

// Service implements device registry use cases: the write side of the
// device population. Schedule-derived reads live in the maintenance service.
type Service struct {
	deviceRepo domainDevice.Repository
}

// NewService creates a new device service
func NewService(deviceRepo domainDevice.Repository) *Service {
	return &Service{deviceRepo: deviceRepo}
}

func (s *Service) CreateDevice(ctx context.Context, req *CreateDeviceRequest, createdBy uuid.UUID) (*DeviceResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	existing, err := s.deviceRepo.GetByIdentificationNumber(ctx, req.IdentificationNumber)
	if err != nil && !errors.Is(err, domainDevice.ErrDeviceNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, appErrors.NewAppError("DEVICE_EXISTS", "Device with this identification number already exists", nil)
	}

	status := domainDevice.StatusActive
	if req.Status != nil {
		status = domainDevice.DeviceStatus(*req.Status)
	}

	d := &domainDevice.Device{
		Name:                  req.Name,
		IdentificationNumber:  req.IdentificationNumber,
		Location:              req.Location,
		PlannedFrequencyWeeks: req.PlannedFrequencyWeeks,
		PlanComment:           req.PlanComment,
		Status:                status,
		CreatedBy:             &createdBy,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}

	if err := s.deviceRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Device created",
		zap.String("device_id", d.ID.String()),
		zap.String("identification_number", d.IdentificationNumber),
		zap.String("location", d.Location),
		zap.String("event", "device_created"),
	)

	return ToDeviceResponse(d), nil
}

func (s *Service) UpdateDevice(ctx context.Context, deviceID uuid.UUID, req *UpdateDeviceRequest) (*DeviceResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	d, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.IdentificationNumber != nil && *req.IdentificationNumber != d.IdentificationNumber {
		existing, err := s.deviceRepo.GetByIdentificationNumber(ctx, *req.IdentificationNumber)
		if err != nil && !errors.Is(err, domainDevice.ErrDeviceNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, appErrors.NewAppError("DEVICE_EXISTS", "Device with this identification number already exists", nil)
		}
		d.IdentificationNumber = *req.IdentificationNumber
	}
	if req.Location != nil {
		d.Location = *req.Location
	}
	if req.PlannedFrequencyWeeks != nil {
		if *req.PlannedFrequencyWeeks < 1 {
			return nil, domainDevice.ErrInvalidFrequency
		}
		d.PlannedFrequencyWeeks = *req.PlannedFrequencyWeeks
	}
	if req.PlanComment != nil {
		d.PlanComment = req.PlanComment
	}
	if req.Status != nil {
		newStatus := domainDevice.DeviceStatus(*req.Status)
		if !domainDevice.ValidStatus(newStatus) {
			return nil, domainDevice.ErrInvalidStatus
		}
		d.Status = newStatus
	}
	d.UpdatedAt = time.Now()

	if err := s.deviceRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Device updated",
		zap.String("device_id", d.ID.String()),
		zap.String("identification_number", d.IdentificationNumber),
		zap.String("event", "device_updated"),
	)

	return ToDeviceResponse(d), nil
}

// DeleteDevice removes a device and its full check history. The repository
// deletes checks before the device so referential cleanup always holds.
func (s *Service) DeleteDevice(ctx context.Context, deviceID uuid.UUID) error {
	if _, err := s.deviceRepo.GetByID(ctx, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.Delete(ctx, deviceID); err != nil {
		return err
	}

	logger.Info("Device deleted",
		zap.String("device_id", deviceID.String()),
		zap.String("event", "device_deleted"),
	)

	return nil
}
