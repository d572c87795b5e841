package postgres

import (
	"context"
	"errors"
	"fmt"
	domainEmployee "maintenance-tracker/internal/domain/employee"
	"maintenance-tracker/internal/infrastructure/database/postgres/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository implements domain employee.Repository
type EmployeeRepository struct {
	db *DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *DB) domainEmployee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domainEmployee.Employee) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt

	dbModel := toEmployeeModel(e)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return domainEmployee.ErrEmployeeAlreadyExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	e.ID = dbModel.ID
	e.CreatedAt = dbModel.CreatedAt
	e.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, employeeID uuid.UUID) (*domainEmployee.Employee, error) {
	return r.getBy(ctx, "id = ?", employeeID)
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*domainEmployee.Employee, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, code string) (*domainEmployee.Employee, error) {
	return r.getBy(ctx, "employee_id = ?", code)
}

func (r *EmployeeRepository) getBy(ctx context.Context, query string, arg interface{}) (*domainEmployee.Employee, error) {
	var dbModel models.EmployeeModel
	err := r.db.DB.WithContext(ctx).Where(query, arg).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainEmployee.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return toEmployeeEntity(&dbModel), nil
}

func toEmployeeModel(e *domainEmployee.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Name:         e.Name,
		Role:         e.Role,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toEmployeeEntity(m *models.EmployeeModel) *domainEmployee.Employee {
	return &domainEmployee.Employee{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
