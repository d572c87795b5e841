package handler

import (
	"errors"
	domainDevice "maintenance-tracker/internal/domain/device"
	"maintenance-tracker/internal/usecase/device"
	"maintenance-tracker/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DeviceHandler struct {
	service *device.Service
}

func NewDeviceHandler(service *device.Service) *DeviceHandler {
	return &DeviceHandler{service: service}
}

func (h *DeviceHandler) RegisterRoutes(router *gin.RouterGroup) {
	devices := router.Group("/devices")
	{
		devices.POST("", h.CreateDevice)
		devices.PUT("/:id", h.UpdateDevice)
	}
}

func (h *DeviceHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	devices := router.Group("/devices")
	{
		devices.DELETE("/:id", h.DeleteDevice)
	}
}

func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req device.CreateDeviceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	employeeID, ok := currentEmployeeID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.service.CreateDevice(c.Request.Context(), &req, employeeID)
	if err != nil {
		if errors.Is(err, domainDevice.ErrDeviceAlreadyExists) {
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Device created successfully", resp)
}

func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid device ID")
		return
	}

	var req device.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.UpdateDevice(c.Request.Context(), deviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domainDevice.ErrDeviceNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, domainDevice.ErrDeviceAlreadyExists):
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device updated successfully", resp)
}

func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid device ID")
		return
	}

	if err := h.service.DeleteDevice(c.Request.Context(), deviceID); err != nil {
		if errors.Is(err, domainDevice.ErrDeviceNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device deleted successfully", nil)
}
