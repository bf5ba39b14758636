package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry represents one contest submission. The fingerprint identifies "the
// same person" for duplicate-suppression purposes; it is opaque and supplied
// by the caller, never verified here.
type Entry struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	EventID         primitive.ObjectID  `bson:"eventId" json:"eventId"`
	ConfigID        primitive.ObjectID  `bson:"configId" json:"configId"`
	PhotoID         *primitive.ObjectID `bson:"photoId,omitempty" json:"photoId,omitempty"`
	Fingerprint     string              `bson:"fingerprint" json:"fingerprint"`
	ParticipantName string              `bson:"participantName,omitempty" json:"participantName,omitempty"`
	IsWinner        bool                `bson:"isWinner" json:"isWinner"`
	PrizeTier       Tier                `bson:"prizeTier,omitempty" json:"prizeTier,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}
