package mongodb

import (
	"context"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PhotoRepository implements the repositories.PhotoRepository interface.
// The photos collection is written by the upload pipeline; this repository
// only reads display fields from it.
type PhotoRepository struct {
	collection *mongo.Collection
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *mongo.Database) repositories.PhotoRepository {
	return &PhotoRepository{
		collection: db.Collection("photos"),
	}
}

// GetDisplayInfo resolves the display fields for a photo
func (r *PhotoRepository) GetDisplayInfo(ctx context.Context, id primitive.ObjectID) (*models.PhotoDisplayInfo, error) {
	var photo models.Photo
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if err != nil {
		return nil, err
	}
	url := photo.URL
	if photo.ThumbnailURL != "" {
		url = photo.ThumbnailURL
	}
	return &models.PhotoDisplayInfo{
		ParticipantName: photo.UploaderName,
		ImageURL:        url,
	}, nil
}
