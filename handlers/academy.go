package handlers

import (
	"crypto/sha256"
	"fmt"
	"log"
	"net/http"
	"strings"

	"portal-api/models"
	"portal-api/services"

	"github.com/gin-gonic/gin"
)

// AcademyHandler serves the read-only academic-records queries, cached per
// session so repeated page loads do not hammer the upstream service.
type AcademyHandler struct {
	academyClient services.AcademyClient
	cacheService  *services.CacheService
}

func NewAcademyHandler(academy services.AcademyClient, cache *services.CacheService) *AcademyHandler {
	return &AcademyHandler{
		academyClient: academy,
		cacheService:  cache,
	}
}

func (h *AcademyHandler) GetCourses(c *gin.Context) {
	h.serve(c, "courses", func(session string) (interface{}, error) {
		return h.academyClient.Courses(c.Request.Context(), session)
	})
}

func (h *AcademyHandler) GetAttendance(c *gin.Context) {
	h.serve(c, "attendance", func(session string) (interface{}, error) {
		return h.academyClient.Attendance(c.Request.Context(), session)
	})
}

func (h *AcademyHandler) GetTimetable(c *gin.Context) {
	h.serve(c, "timetable", func(session string) (interface{}, error) {
		return h.academyClient.Timetable(c.Request.Context(), session)
	})
}

func (h *AcademyHandler) GetExamSeating(c *gin.Context) {
	h.serve(c, "seating", func(session string) (interface{}, error) {
		return h.academyClient.ExamSeating(c.Request.Context(), session)
	})
}

func (h *AcademyHandler) GetResults(c *gin.Context) {
	h.serve(c, "results", func(session string) (interface{}, error) {
		return h.academyClient.Results(c.Request.Context(), session)
	})
}

// InvalidateCache flushes cached academy reads.
func (h *AcademyHandler) InvalidateCache(c *gin.Context) {
	h.cacheService.Flush()
	c.JSON(http.StatusOK, gin.H{
		"message": "cache invalidated successfully",
	})
}

func (h *AcademyHandler) serve(c *gin.Context, resource string, load func(session string) (interface{}, error)) {
	session := sessionToken(c)
	if session == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "session token is required",
		})
		return
	}

	// Cache keys carry a session digest, not the token itself
	cacheKey := fmt.Sprintf("%s:%x", resource, sha256.Sum256([]byte(session)))

	if cached, found := h.cacheService.Get(cacheKey); found {
		c.JSON(http.StatusOK, gin.H{
			"data":   cached,
			"cached": true,
		})
		return
	}

	data, err := load(session)
	if err != nil {
		log.Printf("AcademyHandler - %s: %v", resource, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "failed to query academic records",
			Message: err.Error(),
		})
		return
	}

	h.cacheService.Set(cacheKey, data, 0)

	c.JSON(http.StatusOK, gin.H{
		"data":   data,
		"cached": false,
	})
}

func sessionToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
