package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/wellness-service/internal/services"
	"github.com/SAP-F-2025/wellness-service/internal/utils"
)

type RecommendationHandler struct {
	BaseHandler
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(
	recommendationService services.RecommendationService,
	logger utils.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		BaseHandler:           NewBaseHandler(logger),
		recommendationService: recommendationService,
	}
}

// GenerateRecommendation computes and stores a recommendation for a student
// @Summary Generate recommendation
// @Description Computes the recommendation from the latest academic snapshot and the usage window, replacing any prior result
// @Tags recommendations
// @Produce json
// @Param student_id path string true "Student identifier"
// @Success 200 {object} models.Recommendation
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /students/{student_id}/recommendation [post]
func (h *RecommendationHandler) GenerateRecommendation(c *gin.Context) {
	studentID := h.parseStudentIDParam(c)
	if studentID == "" {
		return
	}

	h.LogRequest(c, "Generating recommendation", "student_id", studentID)

	rec, err := h.recommendationService.Generate(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetRecommendation returns the stored recommendation for a student
// @Summary Get recommendation
// @Description Returns the most recently computed recommendation without recomputing
// @Tags recommendations
// @Produce json
// @Param student_id path string true "Student identifier"
// @Success 200 {object} models.Recommendation
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /students/{student_id}/recommendation [get]
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	studentID := h.parseStudentIDParam(c)
	if studentID == "" {
		return
	}

	rec, err := h.recommendationService.Get(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// RefreshRecommendations recomputes recommendations for all students
// @Summary Refresh all recommendations
// @Description Sweeps the roster and recomputes every student's recommendation
// @Tags recommendations
// @Produce json
// @Success 200 {object} services.RefreshSummary
// @Failure 500 {object} ErrorResponse
// @Router /recommendations/refresh [post]
func (h *RecommendationHandler) RefreshRecommendations(c *gin.Context) {
	h.LogRequest(c, "Refreshing all recommendations")

	summary, err := h.recommendationService.RefreshAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
