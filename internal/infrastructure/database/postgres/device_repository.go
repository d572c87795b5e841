package postgres

import (
	"context"
	"errors"
	"fmt"
	domainDevice "maintenance-tracker/internal/domain/device"
	"maintenance-tracker/internal/infrastructure/database/postgres/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceRepository implements domain device.Repository
type DeviceRepository struct {
	db *DB
}

// NewDeviceRepository creates a new device repository
func NewDeviceRepository(db *DB) domainDevice.Repository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) Create(ctx context.Context, d *domainDevice.Device) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt

	dbModel := toDeviceModel(d)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return domainDevice.ErrDeviceAlreadyExists
		}
		return fmt.Errorf("failed to create device: %w", err)
	}

	d.ID = dbModel.ID
	d.CreatedAt = dbModel.CreatedAt
	d.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, deviceID uuid.UUID) (*domainDevice.Device, error) {
	var dbModel models.DeviceModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", deviceID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainDevice.ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return toDeviceEntity(&dbModel), nil
}

func (r *DeviceRepository) GetByIdentificationNumber(ctx context.Context, number string) (*domainDevice.Device, error) {
	var dbModel models.DeviceModel
	err := r.db.DB.WithContext(ctx).
		Where("identification_number = ?", number).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainDevice.ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return toDeviceEntity(&dbModel), nil
}

func (r *DeviceRepository) Update(ctx context.Context, d *domainDevice.Device) error {
	d.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.DeviceModel{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"name":                    d.Name,
			"identification_number":   d.IdentificationNumber,
			"location":                d.Location,
			"planned_frequency_weeks": d.PlannedFrequencyWeeks,
			"plan_comment":            d.PlanComment,
			"status":                  string(d.Status),
			"updated_at":              d.UpdatedAt,
		})

	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "duplicate key value") {
			return domainDevice.ErrDeviceAlreadyExists
		}
		return fmt.Errorf("failed to update device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainDevice.ErrDeviceNotFound
	}

	return nil
}

// Delete removes the device together with its checks. The checks go first,
// inside one transaction, so a check never outlives its device.
func (r *DeviceRepository) Delete(ctx context.Context, deviceID uuid.UUID) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", deviceID).Delete(&models.CheckModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete device checks: %w", err)
		}

		result := tx.Where("id = ?", deviceID).Delete(&models.DeviceModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete device: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainDevice.ErrDeviceNotFound
		}
		return nil
	})
}

func (r *DeviceRepository) List(ctx context.Context, filter *domainDevice.Filter) ([]*domainDevice.Device, error) {
	var dbModels []models.DeviceModel

	db := r.db.DB.WithContext(ctx).Model(&models.DeviceModel{})
	if filter != nil {
		if filter.Location != nil {
			db = db.Where("location = ?", *filter.Location)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
	}

	if err := db.Order("created_at ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	devices := make([]*domainDevice.Device, len(dbModels))
	for i := range dbModels {
		devices[i] = toDeviceEntity(&dbModels[i])
	}

	return devices, nil
}

func (r *DeviceRepository) Locations(ctx context.Context) ([]string, error) {
	var locations []string
	err := r.db.DB.WithContext(ctx).
		Model(&models.DeviceModel{}).
		Distinct("location").
		Order("location ASC").
		Pluck("location", &locations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// CheckRepository implements domain device.CheckRepository
type CheckRepository struct {
	db *DB
}

// NewCheckRepository creates a new maintenance check repository
func NewCheckRepository(db *DB) domainDevice.CheckRepository {
	return &CheckRepository{db: db}
}

func (r *CheckRepository) Create(ctx context.Context, c *domainDevice.Check) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()

	dbModel := toCheckModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create check: %w", err)
	}

	c.ID = dbModel.ID
	c.CreatedAt = dbModel.CreatedAt

	return nil
}

func (r *CheckRepository) ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*domainDevice.Check, error) {
	var dbModels []models.CheckModel
	err := r.db.DB.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("completed_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	return toCheckEntities(dbModels), nil
}

func (r *CheckRepository) ListAll(ctx context.Context) ([]*domainDevice.Check, error) {
	var dbModels []models.CheckModel
	err := r.db.DB.WithContext(ctx).
		Order("completed_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	return toCheckEntities(dbModels), nil
}

func (r *CheckRepository) ListCompletedSince(ctx context.Context, since time.Time) ([]*domainDevice.Check, error) {
	var dbModels []models.CheckModel
	err := r.db.DB.WithContext(ctx).
		Where("completed_date >= ?", since).
		Order("completed_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent checks: %w", err)
	}
	return toCheckEntities(dbModels), nil
}

// Helper functions to convert between domain entities and database models

func toDeviceModel(d *domainDevice.Device) *models.DeviceModel {
	return &models.DeviceModel{
		ID:                    d.ID,
		Name:                  d.Name,
		IdentificationNumber:  d.IdentificationNumber,
		Location:              d.Location,
		PlannedFrequencyWeeks: d.PlannedFrequencyWeeks,
		PlanComment:           d.PlanComment,
		Status:                string(d.Status),
		CreatedBy:             d.CreatedBy,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

func toDeviceEntity(m *models.DeviceModel) *domainDevice.Device {
	return &domainDevice.Device{
		ID:                    m.ID,
		Name:                  m.Name,
		IdentificationNumber:  m.IdentificationNumber,
		Location:              m.Location,
		PlannedFrequencyWeeks: m.PlannedFrequencyWeeks,
		PlanComment:           m.PlanComment,
		Status:                domainDevice.DeviceStatus(m.Status),
		CreatedBy:             m.CreatedBy,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func toCheckModel(c *domainDevice.Check) *models.CheckModel {
	return &models.CheckModel{
		ID:            c.ID,
		DeviceID:      c.DeviceID,
		CheckedBy:     c.CheckedBy,
		ScheduledDate: c.ScheduledDate,
		CompletedDate: c.CompletedDate,
		Status:        string(c.Status),
		CheckComment:  c.CheckComment,
		IsDelayed:     c.IsDelayed,
		CreatedAt:     c.CreatedAt,
	}
}

func toCheckEntity(m *models.CheckModel) *domainDevice.Check {
	return &domainDevice.Check{
		ID:            m.ID,
		DeviceID:      m.DeviceID,
		CheckedBy:     m.CheckedBy,
		ScheduledDate: m.ScheduledDate,
		CompletedDate: m.CompletedDate,
		Status:        domainDevice.CheckStatus(m.Status),
		CheckComment:  m.CheckComment,
		IsDelayed:     m.IsDelayed,
		CreatedAt:     m.CreatedAt,
	}
}

func toCheckEntities(dbModels []models.CheckModel) []*domainDevice.Check {
	checks := make([]*domainDevice.Check, len(dbModels))
	for i := range dbModels {
		checks[i] = toCheckEntity(&dbModels[i])
	}
	return checks
}
