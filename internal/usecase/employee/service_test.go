package employee

import (
	"context"
	"testing"

	"maintenance-tracker/internal/config"
	domainEmployee "maintenance-tracker/internal/domain/employee"
	"maintenance-tracker/internal/infrastructure/memory"
	appErrors "maintenance-tracker/pkg/errors"
	"maintenance-tracker/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.ExpiryHours = 1
	return NewService(memory.NewEmployeeRepository(), cfg)
}

func validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		EmployeeID: "EMP-001",
		Email:      "tech@example.com",
		Password:   "Sup3rSecret",
		Name:       "Field Tech",
	}
}

func TestRegister(t *testing.T) {
	s := newTestService()

	resp, err := s.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Employee)
	assert.Equal(t, "EMP-001", resp.Employee.EmployeeID)
	assert.Equal(t, "tech@example.com", resp.Employee.Email)
	assert.Equal(t, domainEmployee.RoleEmployee, resp.Employee.Role, "role defaults to employee")
	assert.NotEmpty(t, resp.AccessToken)
	assert.False(t, resp.ExpiresAt.IsZero())

	claims, err := utils.ValidateToken(resp.AccessToken, "test-secret-key")
	require.NoError(t, err)
	assert.Equal(t, resp.Employee.ID, claims.EmployeeID)
	assert.Equal(t, domainEmployee.RoleEmployee, claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestService()

	_, err := s.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	dup := validRegisterRequest()
	dup.EmployeeID = "EMP-002"
	_, err = s.Register(context.Background(), dup)
	assert.ErrorIs(t, err, appErrors.ErrEmployeeAlreadyExists)
}

func TestRegister_DuplicateEmployeeID(t *testing.T) {
	s := newTestService()

	_, err := s.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	dup := validRegisterRequest()
	dup.Email = "other@example.com"
	_, err = s.Register(context.Background(), dup)
	assert.ErrorIs(t, err, appErrors.ErrEmployeeAlreadyExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	s := newTestService()

	for _, password := range []string{"alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		req := validRegisterRequest()
		req.Password = password
		_, err := s.Register(context.Background(), req)
		assert.Error(t, err, "password %q should be rejected", password)
	}
}

func TestLogin(t *testing.T) {
	s := newTestService()

	_, err := s.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	resp, err := s.Login(context.Background(), &LoginRequest{
		Email:    "tech@example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "EMP-001", resp.Employee.EmployeeID)
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newTestService()

	_, err := s.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = s.Login(context.Background(), &LoginRequest{
		Email:    "tech@example.com",
		Password: "WrongPass1",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := newTestService()

	_, err := s.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "Whatever1x",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	s := newTestService()

	created, err := s.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	profile, err := s.GetProfile(context.Background(), created.Employee.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Employee.Email, profile.Email)

	_, err = s.GetProfile(context.Background(), uuid.New())
	assert.Error(t, err)
}
