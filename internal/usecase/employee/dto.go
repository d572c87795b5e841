package employee

import (
	"time"

	"github.com/google/uuid"
	domainEmployee "maintenance-tracker/internal/domain/employee"
)

type RegisterRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=1,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Role       string `json:"role" validate:"omitempty,employee_role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EmployeeResponse is the safe projection of an employee; it never carries
// the password hash.
type EmployeeResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AuthResponse struct {
	Employee    *EmployeeResponse `json:"employee"`
	AccessToken string            `json:"access_token"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

func ToEmployeeResponse(e *domainEmployee.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		Name:       e.Name,
		Role:       e.Role,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
