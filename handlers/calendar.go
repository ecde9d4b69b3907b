package handlers

import (
	"log"
	"net/http"

	"portal-api/models"
	"portal-api/services"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarService *services.CalendarService
	roleService     *services.RoleService
}

func NewCalendarHandler(calendar *services.CalendarService, roles *services.RoleService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendar,
		roleService:     roles,
	}
}

type calendarEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
}

// GetEvents returns all calendar events.
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	events, err := h.calendarService.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "failed to load calendar events")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": events})
}

// AddEvent creates a calendar event. Calendar writes are superadmin-only.
func (h *CalendarHandler) AddEvent(c *gin.Context) {
	log.Println("CalendarHandler - AddEvent")

	if !h.roleService.IsSuperadmin(userIDs(c)) {
		writeForbidden(c)
		return
	}

	req, ok := h.bindEvent(c)
	if !ok {
		return
	}

	event, err := h.calendarService.Add(c.Request.Context(), req.Title, req.Type, req.StartDate, req.EndDate, req.Description)
	if err != nil {
		writeStoreError(c, err, "failed to add calendar event")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": event})
}

// UpdateEvent replaces an event's fields in place.
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	log.Println("CalendarHandler - UpdateEvent")

	if !h.roleService.IsSuperadmin(userIDs(c)) {
		writeForbidden(c)
		return
	}

	req, ok := h.bindEvent(c)
	if !ok {
		return
	}

	id := c.Param("id")
	err := h.calendarService.Update(c.Request.Context(), id, req.Title, req.Type, req.StartDate, req.EndDate, req.Description)
	if err != nil {
		writeStoreError(c, err, "failed to update calendar event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event updated"})
}

// DeleteEvent removes an event by id.
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	log.Println("CalendarHandler - DeleteEvent")

	if !h.roleService.IsSuperadmin(userIDs(c)) {
		writeForbidden(c)
		return
	}

	if err := h.calendarService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeStoreError(c, err, "failed to delete calendar event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (h *CalendarHandler) bindEvent(c *gin.Context) (calendarEventRequest, bool) {
	var req calendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return req, false
	}
	if !models.ValidEventType(req.Type) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "type must be one of holiday, assessment, meeting, milestone",
		})
		return req, false
	}
	return req, true
}
