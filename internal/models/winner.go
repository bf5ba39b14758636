package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Winner is an append-only record of a prize award. A replaced winner is
// annotated, never deleted, so the full draw history survives redraws.
type Winner struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID           primitive.ObjectID `bson:"eventId" json:"eventId"`
	EntryID           primitive.ObjectID `bson:"entryId" json:"entryId"`
	ParticipantName   string             `bson:"participantName" json:"participantName"`
	DisplayImageURL   string             `bson:"displayImageUrl,omitempty" json:"displayImageUrl,omitempty"`
	PrizeTier         Tier               `bson:"prizeTier" json:"prizeTier"`
	PrizeName         string             `bson:"prizeName" json:"prizeName"`
	PrizeDescription  string             `bson:"prizeDescription,omitempty" json:"prizeDescription,omitempty"`
	SelectionOrder    int                `bson:"selectionOrder" json:"selectionOrder"` // strictly increasing per event
	IsClaimed         bool               `bson:"isClaimed" json:"isClaimed"`
	IsRedraw          bool               `bson:"isRedraw" json:"isRedraw"`
	RedrawReason      string             `bson:"redrawReason,omitempty" json:"redrawReason,omitempty"`
	IsReplaced        bool               `bson:"isReplaced" json:"isReplaced"`
	ReplacementReason string             `bson:"replacementReason,omitempty" json:"replacementReason,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
