package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/repositories"
	"github.com/eventpix/luckydraw-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure EntryServiceImpl implements EntryService
var _ EntryService = (*EntryServiceImpl)(nil)

// EntryServiceImpl records contest submissions against the event's active
// scheduled configuration and enforces the per-user entry cap at creation
// time.
type EntryServiceImpl struct {
	configRepo repositories.DrawConfigRepository
	entryRepo  repositories.EntryRepository
}

// NewEntryService creates a new EntryServiceImpl
func NewEntryService(configRepo repositories.DrawConfigRepository, entryRepo repositories.EntryRepository) *EntryServiceImpl {
	return &EntryServiceImpl{
		configRepo: configRepo,
		entryRepo:  entryRepo,
	}
}

// CreateEntry records a submission. When entry.ConfigID is unset, the most
// recently created SCHEDULED configuration for the event is used. Fails with
// ErrMaxEntriesPerUser once the participant has reached the configured cap.
func (s *EntryServiceImpl) CreateEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if entry.EventID.IsZero() {
		return nil, errors.New("eventId is required")
	}
	if entry.Fingerprint == "" {
		return nil, errors.New("fingerprint is required")
	}

	var cfg *models.DrawConfig
	var err error
	if entry.ConfigID.IsZero() {
		cfg, err = s.configRepo.FindLatestScheduledByEvent(ctx, entry.EventID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, errors.New("no scheduled draw configuration exists for this event")
			}
			return nil, fmt.Errorf("failed to resolve active configuration: %w", err)
		}
		entry.ConfigID = cfg.ID
	} else {
		cfg, err = s.configRepo.FindByID(ctx, entry.ConfigID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrConfigNotFound
			}
			return nil, fmt.Errorf("failed to load draw configuration: %w", err)
		}
	}
	if cfg.Status != models.DrawStatusScheduled {
		return nil, ErrDrawNotScheduled
	}

	count, err := s.entryRepo.CountByConfigAndFingerprint(ctx, cfg.ID, entry.Fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing entries: %w", err)
	}
	if count >= int64(cfg.MaxEntriesPerUser) {
		slog.Warn("Entry cap reached",
			"configId", cfg.ID.Hex(),
			"fingerprint", utils.MaskFingerprint(entry.Fingerprint),
			"maxEntriesPerUser", cfg.MaxEntriesPerUser)
		return nil, ErrMaxEntriesPerUser
	}

	entry.IsWinner = false
	entry.PrizeTier = ""
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		slog.Error("Failed to create entry", "error", err, "configId", cfg.ID.Hex())
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	if err := s.configRepo.IncrementTotalEntries(ctx, cfg.ID); err != nil {
		// The counter is denormalized display data; the entry itself is saved.
		slog.Error("Failed to increment total entries", "error", err, "configId", cfg.ID.Hex())
	}

	slog.Info("Entry created",
		"entryId", entry.ID.Hex(),
		"configId", cfg.ID.Hex(),
		"fingerprint", utils.MaskFingerprint(entry.Fingerprint))
	return entry, nil
}
