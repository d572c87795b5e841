package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents an authenticated member of staff. PasswordHash never
// leaves the service layer; response DTOs omit it.
type Employee struct {
	ID           uuid.UUID
	EmployeeID   string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// IsAdmin reports whether the employee has administrative privileges.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
