package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is the externally-owned submitted artifact an entry may link to.
// The engine only reads it to enrich a winner record's display fields.
type Photo struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID      primitive.ObjectID `bson:"eventId" json:"eventId"`
	UploaderName string             `bson:"uploaderName,omitempty" json:"uploaderName,omitempty"`
	URL          string             `bson:"url" json:"url"`
	ThumbnailURL string             `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PhotoDisplayInfo carries the display fields resolved from a linked photo
type PhotoDisplayInfo struct {
	ParticipantName string `json:"participantName,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
}
