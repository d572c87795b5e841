package memory

import (
	"context"
	"sync"
	"time"

	domainEmployee "maintenance-tracker/internal/domain/employee"

	"github.com/google/uuid"
)

// EmployeeRepository is an in-memory employee store for tests and local runs.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[uuid.UUID]*domainEmployee.Employee
}

// NewEmployeeRepository constructs an empty repository.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: make(map[uuid.UUID]*domainEmployee.Employee),
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domainEmployee.Employee) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.Email == e.Email || existing.EmployeeID == e.EmployeeID {
			return domainEmployee.ErrEmployeeAlreadyExists
		}
	}

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.UpdatedAt = e.CreatedAt

	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, employeeID uuid.UUID) (*domainEmployee.Employee, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[employeeID]
	if !ok {
		return nil, domainEmployee.ErrEmployeeNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*domainEmployee.Employee, error) {
	return r.find(ctx, func(e *domainEmployee.Employee) bool { return e.Email == email })
}

func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, code string) (*domainEmployee.Employee, error) {
	return r.find(ctx, func(e *domainEmployee.Employee) bool { return e.EmployeeID == code })
}

func (r *EmployeeRepository) find(ctx context.Context, match func(*domainEmployee.Employee) bool) (*domainEmployee.Employee, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if match(e) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domainEmployee.ErrEmployeeNotFound
}
