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

// DrawConfigRepository implements the repositories.DrawConfigRepository interface
type DrawConfigRepository struct {
	collection *mongo.Collection
}

// NewDrawConfigRepository creates a new DrawConfigRepository
func NewDrawConfigRepository(db *mongo.Database) repositories.DrawConfigRepository {
	return &DrawConfigRepository{
		collection: db.Collection("draw_configs"),
	}
}

// Create creates a new draw configuration
func (r *DrawConfigRepository) Create(ctx context.Context, cfg *models.DrawConfig) error {
	cfg.CreatedAt = time.Now()
	cfg.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, cfg)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		cfg.ID = id
	}
	return nil
}

// FindByID finds a draw configuration by ID
func (r *DrawConfigRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DrawConfig, error) {
	var cfg models.DrawConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindByEvent finds all draw configurations for an event, newest first
func (r *DrawConfigRepository) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.DrawConfig, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"eventId": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var configs []*models.DrawConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// FindLatestScheduledByEvent finds the most recently created SCHEDULED
// configuration for an event
func (r *DrawConfigRepository) FindLatestScheduledByEvent(ctx context.Context, eventID primitive.ObjectID) (*models.DrawConfig, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})
	var cfg models.DrawConfig
	err := r.collection.FindOne(ctx, bson.M{"eventId": eventID, "status": models.DrawStatusScheduled}, opts).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateStatusIfScheduled performs a conditional status transition. The
// filter requires status == SCHEDULED at write time, so concurrent callers
// race on a single document update and at most one of them wins.
func (r *DrawConfigRepository) UpdateStatusIfScheduled(ctx context.Context, id primitive.ObjectID, status models.DrawConfigStatus, reason string) (bool, error) {
	set := bson.M{"status": status, "updatedAt": time.Now()}
	if reason != "" {
		set["cancelReason"] = reason
	}
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.DrawStatusScheduled},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// IncrementTotalEntries increments the denormalized entry counter
func (r *DrawConfigRepository) IncrementTotalEntries(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"totalEntries": 1},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}

// CountByEventAndStatus counts configurations for an event in a given status
func (r *DrawConfigRepository) CountByEventAndStatus(ctx context.Context, eventID primitive.ObjectID, status models.DrawConfigStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"eventId": eventID, "status": status})
}
