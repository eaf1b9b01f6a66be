package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseStudentIDParam extracts the student identifier path parameter.
// Responds 400 and returns "" when the parameter is empty.
func (h *BaseHandler) parseStudentIDParam(c *gin.Context) string {
	studentID := c.Param("student_id")
	if studentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing student_id parameter",
		})
		return ""
	}
	return studentID
}

// parseQueryInt reads an optional integer query parameter with a default.
func parseQueryInt(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}
