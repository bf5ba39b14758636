package handlers

import (
	"errors"
	"net/http"

	"github.com/eventpix/luckydraw-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps engine failure conditions to HTTP statuses. Anything not
// in the taxonomy is a store or internal failure.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrConfigNotFound),
		errors.Is(err, services.ErrPrizeTierNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDrawNotScheduled),
		errors.Is(err, services.ErrMaxEntriesPerUser),
		errors.Is(err, services.ErrScheduledConfigExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoEntries),
		errors.Is(err, services.ErrNoEligibleEntries),
		errors.Is(err, services.ErrNoEligibleEntriesForRedraw):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
