package mongodb

import (
	"context"
	"time"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EntryRepository implements the repositories.EntryRepository interface
type EntryRepository struct {
	collection *mongo.Collection
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *mongo.Database) repositories.EntryRepository {
	return &EntryRepository{
		collection: db.Collection("entries"),
	}
}

// Create creates a new entry
func (r *EntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		entry.ID = id
	}
	return nil
}

// FindByID finds an entry by ID
func (r *EntryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error) {
	var entry models.Entry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByIDs finds all entries whose IDs are in ids
func (r *EntryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Entry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindNonWinning finds all entries for a configuration that have not won,
// in submission order
func (r *EntryRepository) FindNonWinning(ctx context.Context, configID primitive.ObjectID) ([]*models.Entry, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"configId": configID, "isWinner": false}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByConfigAndFingerprint counts a participant's entries in a configuration
func (r *EntryRepository) CountByConfigAndFingerprint(ctx context.Context, configID primitive.ObjectID, fingerprint string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"configId": configID, "fingerprint": fingerprint})
}

// MarkWinner marks an entry as a winner of the given tier
func (r *EntryRepository) MarkWinner(ctx context.Context, id primitive.ObjectID, tier models.Tier) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"isWinner":  true,
			"prizeTier": tier,
			"updatedAt": time.Now(),
		}},
	)
	return err
}

// ClearWinner reverts an entry to the non-winning state, returning it to the
// eligible pool
func (r *EntryRepository) ClearWinner(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":   bson.M{"isWinner": false, "updatedAt": time.Now()},
			"$unset": bson.M{"prizeTier": ""},
		},
	)
	return err
}

// CountByEvent counts all entries for an event
func (r *EntryRepository) CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"eventId": eventID})
}

// CountByEventAndFingerprint counts a participant's entries across an event
func (r *EntryRepository) CountByEventAndFingerprint(ctx context.Context, eventID primitive.ObjectID, fingerprint string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"eventId": eventID, "fingerprint": fingerprint})
}

// DistinctFingerprintsByEvent returns the distinct participant fingerprints
// seen across an event's entries
func (r *EntryRepository) DistinctFingerprintsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "fingerprint", bson.M{"eventId": eventID})
	if err != nil {
		return nil, err
	}
	fingerprints := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			fingerprints = append(fingerprints, s)
		}
	}
	return fingerprints, nil
}

// HasWinningEntry reports whether a participant has any winning entry in the event
func (r *EntryRepository) HasWinningEntry(ctx context.Context, eventID primitive.ObjectID, fingerprint string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"eventId":     eventID,
		"fingerprint": fingerprint,
		"isWinner":    true,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
