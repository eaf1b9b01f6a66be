package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/wellness-service/internal/services"
	"github.com/SAP-F-2025/wellness-service/internal/utils"
)

type TelemetryHandler struct {
	BaseHandler
	telemetryService services.TelemetryService
}

func NewTelemetryHandler(telemetryService services.TelemetryService, logger utils.Logger) *TelemetryHandler {
	return &TelemetryHandler{
		BaseHandler:      NewBaseHandler(logger),
		telemetryService: telemetryService,
	}
}

// RecordAcademic stores an academic record for a student
// @Summary Record academic data
// @Description Stores subject marks, overall mark, study hours and focus level
// @Tags telemetry
// @Accept json
// @Produce json
// @Param record body services.RecordAcademicRequest true "Academic record"
// @Success 201 {object} models.AcademicRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /students/{student_id}/academics [post]
func (h *TelemetryHandler) RecordAcademic(c *gin.Context) {
	studentID := h.parseStudentIDParam(c)
	if studentID == "" {
		return
	}

	var req services.RecordAcademicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	req.StudentID = studentID

	record, err := h.telemetryService.RecordAcademic(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// AcademicHistory lists a student's academic records, newest first
// @Summary Academic history
// @Description Lists academic records for a student ordered by recency
// @Tags telemetry
// @Produce json
// @Param student_id path string true "Student identifier"
// @Param limit query int false "Maximum records to return"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /students/{student_id}/academics [get]
func (h *TelemetryHandler) AcademicHistory(c *gin.Context) {
	studentID := h.parseStudentIDParam(c)
	if studentID == "" {
		return
	}

	limit := parseQueryInt(c, "limit", 20)

	records, err := h.telemetryService.AcademicHistory(c.Request.Context(), studentID, limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"student_id": studentID,
		"records":    records,
	})
}

// RecordUsage stores one day of app usage for a student
// @Summary Record usage data
// @Description Stores screen time, night usage and per-app durations for a day
// @Tags telemetry
// @Accept json
// @Produce json
// @Param record body services.RecordUsageRequest true "Usage record"
// @Success 201 {object} models.UsageRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /students/{student_id}/usage [post]
func (h *TelemetryHandler) RecordUsage(c *gin.Context) {
	studentID := h.parseStudentIDParam(c)
	if studentID == "" {
		return
	}

	var req services.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	req.StudentID = studentID

	record, err := h.telemetryService.RecordUsage(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}
