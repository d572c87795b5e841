package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"maintenance-tracker/internal/config"
	domainEmployee "maintenance-tracker/internal/domain/employee"
	"maintenance-tracker/internal/logger"
	appErrors "maintenance-tracker/pkg/errors"
	"maintenance-tracker/pkg/utils"
)

// Service implements employee registration and authentication.
type Service struct {
	employeeRepo domainEmployee.Repository
	config       *config.Config
}

// NewService creates a new employee service
func NewService(employeeRepo domainEmployee.Repository, cfg *config.Config) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		config:       cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	email, err := utils.ValidateAndSanitizeEmail(req.Email)
	if err != nil {
		return nil, appErrors.ErrInvalidEmail
	}

	existing, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainEmployee.ErrEmployeeNotFound) {
		return nil, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, appErrors.ErrEmployeeAlreadyExists
	}

	existing, err = s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, domainEmployee.ErrEmployeeNotFound) {
		return nil, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if existing != nil {
		return nil, appErrors.ErrEmployeeAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domainEmployee.RoleEmployee
	}

	emp := &domainEmployee.Employee{
		EmployeeID:   req.EmployeeID,
		Email:        email,
		PasswordHash: hashed,
		Name:         utils.SanitizeString(req.Name),
		Role:         role,
	}

	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	token, expiresAt, err := utils.GenerateToken(emp.ID, emp.Email, emp.Role, s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Employee registered",
		zap.String("employee_id", emp.ID.String()),
		zap.String("employee_code", emp.EmployeeID),
		zap.String("role", emp.Role),
		zap.String("event", "employee_registered"),
	)

	return &AuthResponse{
		Employee:    ToEmployeeResponse(emp),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domainEmployee.ErrEmployeeNotFound) {
			logger.Warn("Login attempt with unknown email",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_unknown_email"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(emp.PasswordHash, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("employee_id", emp.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(emp.ID, emp.Email, emp.Role, s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Employee logged in",
		zap.String("employee_id", emp.ID.String()),
		zap.String("role", emp.Role),
		zap.String("event", "login_success"),
	)

	return &AuthResponse{
		Employee:    ToEmployeeResponse(emp),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *Service) GetProfile(ctx context.Context, employeeID uuid.UUID) (*EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponse(emp), nil
}
