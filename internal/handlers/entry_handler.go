package handlers

import (
	"net/http"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntryHandler handles entry-related HTTP requests
type EntryHandler struct {
	entryService services.EntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService services.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// CreateEntry handles POST /entries
type CreateEntryRequest struct {
	EventID         string `json:"event_id" binding:"required"`
	ConfigID        string `json:"config_id"`
	PhotoID         string `json:"photo_id"`
	Fingerprint     string `json:"fingerprint" binding:"required"`
	ParticipantName string `json:"participant_name"`
}

func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var request CreateEntryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eventID, err := primitive.ObjectIDFromHex(request.EventID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	entry := &models.Entry{
		EventID:         eventID,
		Fingerprint:     request.Fingerprint,
		ParticipantName: request.ParticipantName,
	}
	if request.ConfigID != "" {
		configID, err := primitive.ObjectIDFromHex(request.ConfigID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid config ID format"})
			return
		}
		entry.ConfigID = configID
	}
	if request.PhotoID != "" {
		photoID, err := primitive.ObjectIDFromHex(request.PhotoID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo ID format"})
			return
		}
		entry.PhotoID = &photoID
	}

	created, err := h.entryService.CreateEntry(c.Request.Context(), entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
