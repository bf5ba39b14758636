package repositories

import (
	"context"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawConfigRepository defines the interface for draw configuration data operations
type DrawConfigRepository interface {
	Create(ctx context.Context, cfg *models.DrawConfig) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.DrawConfig, error)
	FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.DrawConfig, error)
	FindLatestScheduledByEvent(ctx context.Context, eventID primitive.ObjectID) (*models.DrawConfig, error)
	// UpdateStatusIfScheduled transitions the configuration to status only if
	// it is still SCHEDULED, and reports whether a document was updated. This
	// is the atomic guard against concurrent executions of the same draw.
	UpdateStatusIfScheduled(ctx context.Context, id primitive.ObjectID, status models.DrawConfigStatus, reason string) (bool, error)
	IncrementTotalEntries(ctx context.Context, id primitive.ObjectID) error
	CountByEventAndStatus(ctx context.Context, eventID primitive.ObjectID, status models.DrawConfigStatus) (int64, error)
}

// EntryRepository defines the interface for contest entry data operations
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Entry, error)
	FindNonWinning(ctx context.Context, configID primitive.ObjectID) ([]*models.Entry, error)
	CountByConfigAndFingerprint(ctx context.Context, configID primitive.ObjectID, fingerprint string) (int64, error)
	MarkWinner(ctx context.Context, id primitive.ObjectID, tier models.Tier) error
	ClearWinner(ctx context.Context, id primitive.ObjectID) error
	CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error)
	CountByEventAndFingerprint(ctx context.Context, eventID primitive.ObjectID, fingerprint string) (int64, error)
	DistinctFingerprintsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]string, error)
	HasWinningEntry(ctx context.Context, eventID primitive.ObjectID, fingerprint string) (bool, error)
}

// WinnerRepository defines the interface for winner data operations
type WinnerRepository interface {
	Create(ctx context.Context, winner *models.Winner) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Winner, error)
	FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.Winner, error)
	CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error)
	MaxSelectionOrderByEvent(ctx context.Context, eventID primitive.ObjectID) (int, error)
	// AnnotateReplacement marks the winner as replaced and appends the reason
	// to its prize description. The row itself is never deleted.
	AnnotateReplacement(ctx context.Context, id primitive.ObjectID, reason string) (*models.Winner, error)
}

// PhotoRepository defines the interface for photo lookups. Photos are owned
// by the upload pipeline; the draw engine only reads display info from them.
type PhotoRepository interface {
	GetDisplayInfo(ctx context.Context, id primitive.ObjectID) (*models.PhotoDisplayInfo, error)
}

// TransactionRunner runs fn inside a single store transaction. The context
// passed to fn must be used for every store call that should join the
// transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
