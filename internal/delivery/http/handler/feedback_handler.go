package handler

import (
	"errors"
	domainFeedback "maintenance-tracker/internal/domain/feedback"
	"maintenance-tracker/internal/usecase/feedback"
	"maintenance-tracker/pkg/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackHandler struct {
	service *feedback.Service
}

func NewFeedbackHandler(service *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// RegisterPublicRoutes exposes the endpoints customers hit without a token:
// reading a published form and submitting a response to it.
func (h *FeedbackHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	forms := router.Group("/feedback/forms")
	{
		forms.GET("/:id", h.GetForm)
	}
	router.POST("/feedback", h.SubmitFeedback)
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	templates := router.Group("/feedback/templates")
	{
		templates.POST("", h.CreateTemplate)
		templates.GET("", h.ListTemplates)
		templates.PUT("/:id", h.UpdateTemplate)
		templates.DELETE("/:id", h.DeleteTemplate)
	}

	forms := router.Group("/feedback/forms")
	{
		forms.POST("", h.CreateForm)
		forms.GET("", h.ListForms)
		forms.PUT("/:id", h.UpdateForm)
	}

	router.GET("/feedback", h.ListFeedback)
	router.GET("/feedback/stats", h.GetStats)
	router.GET("/feedback/export", h.ExportCSV)
}

func (h *FeedbackHandler) CreateTemplate(c *gin.Context) {
	var req feedback.CreateTemplateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateTemplate(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Template created successfully", resp)
}

func (h *FeedbackHandler) ListTemplates(c *gin.Context) {
	templates, err := h.service.ListTemplates(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Templates retrieved successfully", templates)
}

func (h *FeedbackHandler) UpdateTemplate(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	var req feedback.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.UpdateTemplate(c.Request.Context(), templateID, &req)
	if err != nil {
		if errors.Is(err, domainFeedback.ErrTemplateNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template updated successfully", resp)
}

func (h *FeedbackHandler) DeleteTemplate(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if err := h.service.DeleteTemplate(c.Request.Context(), templateID); err != nil {
		if errors.Is(err, domainFeedback.ErrTemplateNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template deleted successfully", nil)
}

func (h *FeedbackHandler) CreateForm(c *gin.Context) {
	var req feedback.CreateFormRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateForm(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Form created successfully", resp)
}

func (h *FeedbackHandler) GetForm(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid form ID")
		return
	}

	resp, err := h.service.GetForm(c.Request.Context(), formID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Form retrieved successfully", resp)
}

func (h *FeedbackHandler) ListForms(c *gin.Context) {
	forms, err := h.service.ListForms(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Forms retrieved successfully", forms)
}

func (h *FeedbackHandler) UpdateForm(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid form ID")
		return
	}

	var req feedback.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.UpdateForm(c.Request.Context(), formID, &req)
	if err != nil {
		if errors.Is(err, domainFeedback.ErrFormNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Form updated successfully", resp)
}

func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req feedback.SubmitFeedbackRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.SubmitFeedback(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domainFeedback.ErrFormNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Feedback submitted successfully", resp)
}

func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	var formID *uuid.UUID
	if raw := c.Query("form_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid form_id parameter")
			return
		}
		formID = &parsed
	}

	items, err := h.service.ListFeedback(c.Request.Context(), formID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback retrieved successfully", items)
}

func (h *FeedbackHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback statistics retrieved successfully", stats)
}

func (h *FeedbackHandler) ExportCSV(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	filename := "feedback-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
