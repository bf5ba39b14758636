package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WinnerRepository implements the repositories.WinnerRepository interface
type WinnerRepository struct {
	collection *mongo.Collection
}

// NewWinnerRepository creates a new WinnerRepository
func NewWinnerRepository(db *mongo.Database) repositories.WinnerRepository {
	return &WinnerRepository{
		collection: db.Collection("winners"),
	}
}

// Create creates a new winner record
func (r *WinnerRepository) Create(ctx context.Context, winner *models.Winner) error {
	winner.CreatedAt = time.Now()
	winner.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, winner)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		winner.ID = id
	}
	return nil
}

// FindByID finds a winner by ID
func (r *WinnerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Winner, error) {
	var winner models.Winner
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&winner)
	if err != nil {
		return nil, err
	}
	return &winner, nil
}

// FindByEvent finds all winners for an event in selection order
func (r *WinnerRepository) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.Winner, error) {
	opts := options.Find().SetSort(bson.M{"selectionOrder": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"eventId": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var winners []*models.Winner
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	return winners, nil
}

// CountByEvent counts all winner records ever created for an event
func (r *WinnerRepository) CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"eventId": eventID})
}

// MaxSelectionOrderByEvent returns the highest selection order assigned for
// the event, or 0 when no winners exist yet
func (r *WinnerRepository) MaxSelectionOrderByEvent(ctx context.Context, eventID primitive.ObjectID) (int, error) {
	opts := options.FindOne().SetSort(bson.M{"selectionOrder": -1})
	var winner models.Winner
	err := r.collection.FindOne(ctx, bson.M{"eventId": eventID}, opts).Decode(&winner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}
	return winner.SelectionOrder, nil
}

// AnnotateReplacement marks a winner as replaced and appends the reason to
// its prize description. The record is retained for the audit trail.
func (r *WinnerRepository) AnnotateReplacement(ctx context.Context, id primitive.ObjectID, reason string) (*models.Winner, error) {
	winner, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	annotated := winner.PrizeDescription
	if annotated != "" {
		annotated += " "
	}
	if reason != "" {
		annotated += fmt.Sprintf("[REPLACED: %s]", reason)
	} else {
		annotated += "[REPLACED]"
	}

	_, err = r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"isReplaced":        true,
			"replacementReason": reason,
			"prizeDescription":  annotated,
			"updatedAt":         time.Now(),
		}},
	)
	if err != nil {
		return nil, err
	}

	winner.IsReplaced = true
	winner.ReplacementReason = reason
	winner.PrizeDescription = annotated
	return winner, nil
}
