package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawConfigStatus represents the lifecycle status of a draw configuration
type DrawConfigStatus string

const (
	DrawStatusScheduled DrawConfigStatus = "SCHEDULED"
	DrawStatusCompleted DrawConfigStatus = "COMPLETED"
	DrawStatusCancelled DrawConfigStatus = "CANCELLED"
)

// DrawConfig governs one draw lifecycle for an event: the prize tiers on
// offer, the duplicate-suppression rules, and the lifecycle status.
// COMPLETED and CANCELLED are terminal.
type DrawConfig struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID                 primitive.ObjectID `bson:"eventId" json:"eventId"`
	PrizeTiers              []PrizeTier        `bson:"prizeTiers" json:"prizeTiers"`
	MaxEntriesPerUser       int                `bson:"maxEntriesPerUser" json:"maxEntriesPerUser"`
	PreventDuplicateWinners bool               `bson:"preventDuplicateWinners" json:"preventDuplicateWinners"`
	Status                  DrawConfigStatus   `bson:"status" json:"status"`
	TotalEntries            int                `bson:"totalEntries" json:"totalEntries"`
	CancelReason            string             `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt               time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time          `bson:"updatedAt" json:"updatedAt"`
}
