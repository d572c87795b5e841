package handler

import (
	"errors"
	domainDevice "maintenance-tracker/internal/domain/device"
	"maintenance-tracker/internal/usecase/maintenance"
	appErrors "maintenance-tracker/pkg/errors"
	"maintenance-tracker/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	service *maintenance.Service
}

func NewMaintenanceHandler(service *maintenance.Service) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

func (h *MaintenanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	devices := router.Group("/devices")
	{
		devices.GET("", h.ListDevices)
		devices.GET("/:id", h.GetDevice)
		devices.GET("/:id/checks", h.ListDeviceChecks)
	}

	plans := router.Group("/maintenance")
	{
		plans.GET("/overdue", h.ListOverdue)
		plans.GET("/upcoming", h.ListUpcoming)
		plans.GET("/stats", h.DashboardStats)
		plans.GET("/locations", h.ListLocations)
		plans.GET("/checks", h.ListChecks)
		plans.POST("/checks", h.RecordCheck)
	}
}

func (h *MaintenanceHandler) ListDevices(c *gin.Context) {
	var location *string
	if loc := c.Query("location"); loc != "" {
		location = &loc
	}

	devices, err := h.service.ListByLocation(c.Request.Context(), location, time.Now())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Devices retrieved successfully", devices)
}

func (h *MaintenanceHandler) GetDevice(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid device ID")
		return
	}

	device, err := h.service.GetDevice(c.Request.Context(), deviceID, time.Now())
	if err != nil {
		if errors.Is(err, domainDevice.ErrDeviceNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device retrieved successfully", device)
}

func (h *MaintenanceHandler) ListDeviceChecks(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid device ID")
		return
	}

	checks, err := h.service.ListChecks(c.Request.Context(), &deviceID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Checks retrieved successfully", checks)
}

func (h *MaintenanceHandler) ListOverdue(c *gin.Context) {
	devices, err := h.service.ListOverdue(c.Request.Context(), time.Now())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Overdue devices retrieved successfully", devices)
}

func (h *MaintenanceHandler) ListUpcoming(c *gin.Context) {
	daysAhead := maintenance.DefaultUpcomingWindowDays
	if raw := c.Query("days_ahead"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid days_ahead parameter")
			return
		}
		daysAhead = parsed
	}

	devices, err := h.service.ListUpcoming(c.Request.Context(), daysAhead, time.Now())
	if err != nil {
		if errors.Is(err, appErrors.ErrInvalidArgument) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Upcoming devices retrieved successfully", devices)
}

func (h *MaintenanceHandler) DashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context(), time.Now())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
}

func (h *MaintenanceHandler) ListLocations(c *gin.Context) {
	locations, err := h.service.Locations(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Locations retrieved successfully", locations)
}

func (h *MaintenanceHandler) ListChecks(c *gin.Context) {
	var deviceID *uuid.UUID
	if raw := c.Query("device_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid device_id parameter")
			return
		}
		deviceID = &parsed
	}

	checks, err := h.service.ListChecks(c.Request.Context(), deviceID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Checks retrieved successfully", checks)
}

func (h *MaintenanceHandler) RecordCheck(c *gin.Context) {
	var req maintenance.RecordCheckRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	employeeID, ok := currentEmployeeID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	check, err := h.service.RecordCheck(c.Request.Context(), &req, employeeID, time.Now())
	if err != nil {
		if errors.Is(err, domainDevice.ErrDeviceNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Check recorded successfully", check)
}
