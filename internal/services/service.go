package services

import (
	"context"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawService defines the interface for draw lifecycle operations
type DrawService interface {
	// CreateConfig creates a new SCHEDULED draw configuration for an event
	CreateConfig(ctx context.Context, cfg *models.DrawConfig) (*models.DrawConfig, error)

	// GetConfig retrieves a draw configuration by its ID
	GetConfig(ctx context.Context, configID primitive.ObjectID) (*models.DrawConfig, error)

	// ExecuteDraw runs a scheduled draw to completion and returns the winners
	ExecuteDraw(ctx context.Context, configID primitive.ObjectID) (*models.DrawResult, error)

	// CancelDraw aborts a scheduled draw without selecting winners
	CancelDraw(ctx context.Context, configID primitive.ObjectID, reason string) error

	// GetWinnersByEvent retrieves every winner record for an event
	GetWinnersByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.Winner, error)
}

// RedrawService defines the interface for corrective re-selection
type RedrawService interface {
	// Redraw selects a fresh winner for one prize tier, optionally replacing
	// a named previous winner whose record is annotated rather than deleted
	Redraw(ctx context.Context, configID primitive.ObjectID, tier models.Tier, previousWinnerID *primitive.ObjectID, reason string) (*models.RedrawResult, error)
}

// EntryService defines the interface for contest entry operations
type EntryService interface {
	// CreateEntry records a submission against the event's active scheduled
	// configuration, enforcing the per-user entry cap
	CreateEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error)
}

// StatsService defines the interface for read-only dashboard rollups
type StatsService interface {
	GetEventStats(ctx context.Context, eventID primitive.ObjectID) (*models.EventStats, error)
	GetParticipantStats(ctx context.Context, eventID primitive.ObjectID, fingerprint string) (*models.ParticipantStats, error)
}
