package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainDevice "maintenance-tracker/internal/domain/device"
	domainEmployee "maintenance-tracker/internal/domain/employee"
	"maintenance-tracker/internal/domain/schedule"
	"maintenance-tracker/internal/infrastructure/memory"
	"maintenance-tracker/internal/usecase/maintenance"
	"maintenance-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	router     *gin.Engine
	deviceRepo *memory.DeviceRepository
	checkRepo  *memory.CheckRepository
	employee   *domainEmployee.Employee
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deviceRepo := memory.NewDeviceRepository()
	checkRepo := memory.NewCheckRepository(deviceRepo)
	employeeRepo := memory.NewEmployeeRepository()

	emp := &domainEmployee.Employee{
		EmployeeID: "EMP-001",
		Email:      "tech@example.com",
		Name:       "Field Tech",
		Role:       domainEmployee.RoleEmployee,
	}
	require.NoError(t, employeeRepo.Create(context.Background(), emp))

	service := maintenance.NewService(deviceRepo, checkRepo, employeeRepo)
	h := NewMaintenanceHandler(service)

	router := gin.New()
	group := router.Group("/api/v1")
	// Stand-in for the auth middleware.
	group.Use(func(c *gin.Context) {
		c.Set("employeeID", emp.ID)
		c.Set("role", emp.Role)
	})
	h.RegisterRoutes(group)

	return &handlerFixture{
		router:     router,
		deviceRepo: deviceRepo,
		checkRepo:  checkRepo,
		employee:   emp,
	}
}

func (f *handlerFixture) addDevice(t *testing.T, name string, weeks int, createdAt time.Time) *domainDevice.Device {
	t.Helper()

	d := &domainDevice.Device{
		Name:                  name,
		IdentificationNumber:  "ID-" + name,
		Location:              "basement",
		PlannedFrequencyWeeks: weeks,
		Status:                domainDevice.StatusActive,
		CreatedAt:             createdAt,
	}
	require.NoError(t, f.deviceRepo.Create(context.Background(), d))
	return d
}

func (f *handlerFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success, "expected success response, got: %s", w.Body.String())

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestListOverdueEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	f.addDevice(t, "boiler", 1, time.Now().Add(-3*schedule.Week))
	f.addDevice(t, "chiller", 52, time.Now())

	w := f.do(t, http.MethodGet, "/api/v1/maintenance/overdue", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var devices []maintenance.DeviceWithSchedule
	decodeData(t, w, &devices)

	require.Len(t, devices, 1)
	assert.Equal(t, "boiler", devices[0].Name)
	assert.True(t, devices[0].IsOverdue)
}

func TestListUpcomingEndpoint_InvalidWindow(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/maintenance/upcoming?days_ahead=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/maintenance/upcoming?days_ahead=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Default window applies when the parameter is absent.
	w = f.do(t, http.MethodGet, "/api/v1/maintenance/upcoming", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecordCheckEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	d := f.addDevice(t, "boiler", 2, time.Now().Add(-24*time.Hour))

	w := f.do(t, http.MethodPost, "/api/v1/maintenance/checks", maintenance.RecordCheckRequest{
		DeviceID: d.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var check maintenance.CheckWithRelations
	decodeData(t, w, &check)

	assert.Equal(t, d.ID, check.DeviceID)
	assert.True(t, check.IsDelayed, "first check is always delayed")
	require.NotNil(t, check.Device)
	assert.Equal(t, "boiler", check.Device.Name)
	require.NotNil(t, check.CheckedBy)
	assert.Equal(t, "EMP-001", check.CheckedBy.EmployeeID)
}

func TestRecordCheckEndpoint_UnknownDevice(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/maintenance/checks", maintenance.RecordCheckRequest{
		DeviceID: uuid.New(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDeviceEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	d := f.addDevice(t, "boiler", 2, time.Now())

	w := f.do(t, http.MethodGet, "/api/v1/devices/"+d.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got maintenance.DeviceWithSchedule
	decodeData(t, w, &got)
	assert.Equal(t, d.ID, got.ID)
	assert.False(t, got.IsOverdue)

	w = f.do(t, http.MethodGet, "/api/v1/devices/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/devices/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	f.addDevice(t, "boiler", 1, time.Now().Add(-3*schedule.Week))

	w := f.do(t, http.MethodGet, "/api/v1/maintenance/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats maintenance.DashboardStats
	decodeData(t, w, &stats)

	assert.Equal(t, 1, stats.TotalDevices)
	assert.Equal(t, 1, stats.OverdueChecks)
	assert.Equal(t, map[string]int{"basement": 1}, stats.DevicesByLocation)
}
