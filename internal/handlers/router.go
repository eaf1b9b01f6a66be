package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/wellness-service/internal/services"
	"github.com/SAP-F-2025/wellness-service/internal/utils"
)

type HandlerManager struct {
	studentHandler        *StudentHandler
	telemetryHandler      *TelemetryHandler
	recommendationHandler *RecommendationHandler
	reportHandler         *ReportHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		studentHandler:        NewStudentHandler(serviceManager.Student(), logger),
		telemetryHandler:      NewTelemetryHandler(serviceManager.Telemetry(), logger),
		recommendationHandler: NewRecommendationHandler(serviceManager.Recommendation(), logger),
		reportHandler:         NewReportHandler(serviceManager.Report(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		students := v1.Group("/students")
		{
			students.POST("", hm.studentHandler.RegisterStudent)
			students.GET("", hm.studentHandler.ListStudents)
			students.GET("/:student_id", hm.studentHandler.GetStudent)

			// Telemetry ingestion
			students.POST("/:student_id/academics", hm.telemetryHandler.RecordAcademic)
			students.GET("/:student_id/academics", hm.telemetryHandler.AcademicHistory)
			students.POST("/:student_id/usage", hm.telemetryHandler.RecordUsage)

			// Recommendation engine
			students.POST("/:student_id/recommendation", hm.recommendationHandler.GenerateRecommendation)
			students.GET("/:student_id/recommendation", hm.recommendationHandler.GetRecommendation)
		}

		recommendations := v1.Group("/recommendations")
		{
			recommendations.POST("/refresh", hm.recommendationHandler.RefreshRecommendations)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/recommendations.xlsx", hm.reportHandler.ExportRecommendations)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "wellness-service",
	})
}
