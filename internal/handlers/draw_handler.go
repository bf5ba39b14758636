package handlers

import (
	"net/http"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawHandler handles draw-related HTTP requests
type DrawHandler struct {
	drawService   services.DrawService
	redrawService services.RedrawService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(drawService services.DrawService, redrawService services.RedrawService) *DrawHandler {
	return &DrawHandler{
		drawService:   drawService,
		redrawService: redrawService,
	}
}

// CreateConfig handles POST /draw-configs
type CreateConfigRequest struct {
	EventID                 string             `json:"event_id" binding:"required"`
	PrizeTiers              []models.PrizeTier `json:"prize_tiers" binding:"required"`
	MaxEntriesPerUser       int                `json:"max_entries_per_user"`
	PreventDuplicateWinners bool               `json:"prevent_duplicate_winners"`
}

func (h *DrawHandler) CreateConfig(c *gin.Context) {
	var request CreateConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	eventID, err := primitive.ObjectIDFromHex(request.EventID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	cfg := &models.DrawConfig{
		EventID:                 eventID,
		PrizeTiers:              request.PrizeTiers,
		MaxEntriesPerUser:       request.MaxEntriesPerUser,
		PreventDuplicateWinners: request.PreventDuplicateWinners,
	}
	created, err := h.drawService.CreateConfig(c.Request.Context(), cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetConfig handles GET /draw-configs/:id
func (h *DrawHandler) GetConfig(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	cfg, err := h.drawService.GetConfig(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// ExecuteDraw handles POST /draw-configs/:id/execute
func (h *DrawHandler) ExecuteDraw(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	result, err := h.drawService.ExecuteDraw(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draw executed successfully", "result": result})
}

// CancelDraw handles POST /draw-configs/:id/cancel
type CancelDrawRequest struct {
	Reason string `json:"reason"`
}

func (h *DrawHandler) CancelDraw(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	// The reason body is optional
	var request CancelDrawRequest
	_ = c.ShouldBindJSON(&request)
	if err := h.drawService.CancelDraw(c.Request.Context(), id, request.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draw cancelled"})
}

// Redraw handles POST /draw-configs/:id/redraw
type RedrawRequest struct {
	PrizeTier        string `json:"prize_tier" binding:"required"`
	PreviousWinnerID string `json:"previous_winner_id"`
	Reason           string `json:"reason"`
}

func (h *DrawHandler) Redraw(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	var request RedrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var previousWinnerID *primitive.ObjectID
	if request.PreviousWinnerID != "" {
		winnerID, err := primitive.ObjectIDFromHex(request.PreviousWinnerID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid previous winner ID format"})
			return
		}
		previousWinnerID = &winnerID
	}

	result, err := h.redrawService.Redraw(c.Request.Context(), id, models.Tier(request.PrizeTier), previousWinnerID, request.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetWinnersByEvent handles GET /events/:eventId/winners
func (h *DrawHandler) GetWinnersByEvent(c *gin.Context) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}
	winners, err := h.drawService.GetWinnersByEvent(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, winners)
}
