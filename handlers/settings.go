package handlers

import (
	"log"
	"net/http"
	"time"

	"portal-api/models"
	"portal-api/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	roleService     *services.RoleService
}

func NewSettingsHandler(settings *services.SettingsService, roles *services.RoleService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settings,
		roleService:     roles,
	}
}

// GetSettings returns the semester settings. When an end date is configured
// the response also carries the days remaining until it.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings := h.settingsService.Get(c.Request.Context())

	response := gin.H{"data": settings}
	if settings.SemesterEndDate != nil {
		if end, err := time.Parse("2006-01-02", *settings.SemesterEndDate); err == nil {
			days := int(time.Until(end).Hours() / 24)
			response["days_remaining"] = days
		}
	}

	c.JSON(http.StatusOK, response)
}

// SaveSettings overwrites the semester settings. Superadmin-only.
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	log.Println("SettingsHandler - SaveSettings")

	if !h.roleService.IsSuperadmin(userIDs(c)) {
		writeForbidden(c)
		return
	}

	var settings models.SemesterSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if settings.SemesterEndDate != nil {
		if _, err := time.Parse("2006-01-02", *settings.SemesterEndDate); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "semester_end_date must be YYYY-MM-DD",
			})
			return
		}
	}

	if err := h.settingsService.Save(c.Request.Context(), settings); err != nil {
		writeStoreError(c, err, "failed to save semester settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}
