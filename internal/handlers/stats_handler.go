package handlers

import (
	"net/http"

	"github.com/eventpix/luckydraw-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	statsService services.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetEventStats handles GET /events/:eventId/stats
func (h *StatsHandler) GetEventStats(c *gin.Context) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}
	stats, err := h.statsService.GetEventStats(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetParticipantStats handles GET /events/:eventId/participants/:fingerprint
func (h *StatsHandler) GetParticipantStats(c *gin.Context) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}
	fingerprint := c.Param("fingerprint")
	if fingerprint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fingerprint is required"})
		return
	}
	stats, err := h.statsService.GetParticipantStats(c.Request.Context(), eventID, fingerprint)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
