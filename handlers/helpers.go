package handlers

import (
	"errors"
	"net/http"
	"strings"

	"portal-api/models"
	"portal-api/services"

	"github.com/gin-gonic/gin"
)

// userIDs extracts the caller's identity ids (SRN, PESU id, email) from the
// X-User-Ids header. Authentication itself happens upstream; handlers only
// consult the role tables with whatever identity the session layer forwards.
func userIDs(c *gin.Context) []string {
	var ids []string
	for _, id := range strings.Split(c.GetHeader("X-User-Ids"), ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// writeStoreError maps store failures to distinct status codes so the UI can
// tell conflict (re-fetch and retry) from transport (abort) from absence.
func writeStoreError(c *gin.Context, err error, message string) {
	var transportErr *services.TransportError

	switch {
	case services.IsConflict(err):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "conflict: content changed since last read",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not found",
			Message: err.Error(),
		})
	case errors.As(err, &transportErr):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   message,
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   message,
			Message: err.Error(),
		})
	}
}

func writeForbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error: "admin rights required",
	})
}
