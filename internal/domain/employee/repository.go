package employee

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for employee repository operations
type Repository interface {
	Create(ctx context.Context, employee *Employee) error
	GetByID(ctx context.Context, employeeID uuid.UUID) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	GetByEmployeeID(ctx context.Context, code string) (*Employee, error)
}
