package device

import (
	"context"
	"testing"

	domainDevice "maintenance-tracker/internal/domain/device"
	"maintenance-tracker/internal/infrastructure/memory"
	appErrors "maintenance-tracker/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newTestService() (*Service, *memory.DeviceRepository) {
	repo := memory.NewDeviceRepository()
	return NewService(repo), repo
}

func validCreateRequest() *CreateDeviceRequest {
	return &CreateDeviceRequest{
		Name:                  "Boiler 1",
		IdentificationNumber:  "BLR-001",
		Location:              "basement",
		PlannedFrequencyWeeks: 4,
	}
}

func TestCreateDevice(t *testing.T) {
	s, _ := newTestService()
	creator := uuid.New()

	resp, err := s.CreateDevice(context.Background(), validCreateRequest(), creator)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Boiler 1", resp.Name)
	assert.Equal(t, domainDevice.StatusActive, resp.Status, "status defaults to active")
	require.NotNil(t, resp.CreatedBy)
	assert.Equal(t, creator, *resp.CreatedBy)
}

func TestCreateDevice_DuplicateIdentificationNumber(t *testing.T) {
	s, _ := newTestService()

	_, err := s.CreateDevice(context.Background(), validCreateRequest(), uuid.New())
	require.NoError(t, err)

	_, err = s.CreateDevice(context.Background(), validCreateRequest(), uuid.New())
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DEVICE_EXISTS", appErr.Code)
}

func TestCreateDevice_Validation(t *testing.T) {
	s, _ := newTestService()

	cases := map[string]func(*CreateDeviceRequest){
		"missing name":      func(r *CreateDeviceRequest) { r.Name = "" },
		"missing ident":     func(r *CreateDeviceRequest) { r.IdentificationNumber = "" },
		"missing location":  func(r *CreateDeviceRequest) { r.Location = "" },
		"zero frequency":    func(r *CreateDeviceRequest) { r.PlannedFrequencyWeeks = 0 },
		"invalid frequency": func(r *CreateDeviceRequest) { r.PlannedFrequencyWeeks = -2 },
		"unknown status":    func(r *CreateDeviceRequest) { r.Status = strPtr("broken") },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest()
			mutate(req)
			_, err := s.CreateDevice(context.Background(), req, uuid.New())
			assert.Error(t, err)
		})
	}
}

func TestUpdateDevice(t *testing.T) {
	s, _ := newTestService()

	created, err := s.CreateDevice(context.Background(), validCreateRequest(), uuid.New())
	require.NoError(t, err)

	resp, err := s.UpdateDevice(context.Background(), created.ID, &UpdateDeviceRequest{
		Location:              strPtr("roof"),
		PlannedFrequencyWeeks: intPtr(2),
		Status:                strPtr(string(domainDevice.StatusMaintenance)),
	})
	require.NoError(t, err)

	assert.Equal(t, "roof", resp.Location)
	assert.Equal(t, 2, resp.PlannedFrequencyWeeks)
	assert.Equal(t, domainDevice.StatusMaintenance, resp.Status)
	assert.Equal(t, "Boiler 1", resp.Name, "untouched fields stay as they were")
}

func TestUpdateDevice_IdentificationNumberConflict(t *testing.T) {
	s, _ := newTestService()

	first, err := s.CreateDevice(context.Background(), validCreateRequest(), uuid.New())
	require.NoError(t, err)

	other := validCreateRequest()
	other.IdentificationNumber = "BLR-002"
	_, err = s.CreateDevice(context.Background(), other, uuid.New())
	require.NoError(t, err)

	_, err = s.UpdateDevice(context.Background(), first.ID, &UpdateDeviceRequest{
		IdentificationNumber: strPtr("BLR-002"),
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DEVICE_EXISTS", appErr.Code)
}

func TestUpdateDevice_NotFound(t *testing.T) {
	s, _ := newTestService()

	_, err := s.UpdateDevice(context.Background(), uuid.New(), &UpdateDeviceRequest{Location: strPtr("roof")})
	assert.ErrorIs(t, err, domainDevice.ErrDeviceNotFound)
}

func TestDeleteDevice_CascadesChecks(t *testing.T) {
	s, repo := newTestService()
	checkRepo := memory.NewCheckRepository(repo)

	created, err := s.CreateDevice(context.Background(), validCreateRequest(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, checkRepo.Create(context.Background(), &domainDevice.Check{
		DeviceID:  created.ID,
		CheckedBy: uuid.New(),
		Status:    domainDevice.CheckCompleted,
	}))

	require.NoError(t, s.DeleteDevice(context.Background(), created.ID))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domainDevice.ErrDeviceNotFound)

	checks, err := checkRepo.ListByDevice(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, checks, "checks must not outlive their device")
}

func TestDeleteDevice_NotFound(t *testing.T) {
	s, _ := newTestService()

	err := s.DeleteDevice(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainDevice.ErrDeviceNotFound)
}
