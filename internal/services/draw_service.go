package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/repositories"
	"github.com/eventpix/luckydraw-backend/internal/rng"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure DrawServiceImpl implements DrawService
var _ DrawService = (*DrawServiceImpl)(nil)

// DrawServiceImpl orchestrates the draw lifecycle: precondition validation,
// eligibility filtering, shuffling, tier allocation, winner persistence and
// the terminal status transition.
type DrawServiceImpl struct {
	configRepo repositories.DrawConfigRepository
	entryRepo  repositories.EntryRepository
	winnerRepo repositories.WinnerRepository
	photoRepo  repositories.PhotoRepository
	txn        repositories.TransactionRunner
	random     rng.Source
}

// NewDrawService creates a new DrawServiceImpl
func NewDrawService(
	configRepo repositories.DrawConfigRepository,
	entryRepo repositories.EntryRepository,
	winnerRepo repositories.WinnerRepository,
	photoRepo repositories.PhotoRepository,
	txn repositories.TransactionRunner,
	random rng.Source,
) *DrawServiceImpl {
	return &DrawServiceImpl{
		configRepo: configRepo,
		entryRepo:  entryRepo,
		winnerRepo: winnerRepo,
		photoRepo:  photoRepo,
		txn:        txn,
		random:     random,
	}
}

// CreateConfig creates a new SCHEDULED draw configuration. Only one scheduled
// configuration may be active per event at a time.
func (s *DrawServiceImpl) CreateConfig(ctx context.Context, cfg *models.DrawConfig) (*models.DrawConfig, error) {
	if cfg.EventID.IsZero() {
		return nil, errors.New("eventId is required")
	}
	if len(cfg.PrizeTiers) == 0 {
		return nil, errors.New("at least one prize tier is required")
	}
	for _, tier := range cfg.PrizeTiers {
		if !tier.Tier.IsValid() {
			return nil, fmt.Errorf("unknown prize tier %q", tier.Tier)
		}
		if tier.Count < 0 {
			return nil, fmt.Errorf("prize tier %q has a negative winner count", tier.Tier)
		}
	}
	if cfg.MaxEntriesPerUser < 1 {
		cfg.MaxEntriesPerUser = 1
	}

	existing, err := s.configRepo.CountByEventAndStatus(ctx, cfg.EventID, models.DrawStatusScheduled)
	if err != nil {
		slog.Error("Failed to check for existing scheduled configuration", "error", err, "eventId", cfg.EventID.Hex())
		return nil, fmt.Errorf("failed to check for existing scheduled configuration: %w", err)
	}
	if existing > 0 {
		slog.Warn("Attempted to create second scheduled configuration", "eventId", cfg.EventID.Hex())
		return nil, ErrScheduledConfigExists
	}

	cfg.Status = models.DrawStatusScheduled
	cfg.TotalEntries = 0
	if err := s.configRepo.Create(ctx, cfg); err != nil {
		slog.Error("Failed to create draw configuration", "error", err, "eventId", cfg.EventID.Hex())
		return nil, fmt.Errorf("failed to save draw configuration: %w", err)
	}

	slog.Info("Draw configuration created", "configId", cfg.ID.Hex(), "eventId", cfg.EventID.Hex(), "tiers", len(cfg.PrizeTiers))
	return cfg, nil
}

// GetConfig retrieves a draw configuration by ID
func (s *DrawServiceImpl) GetConfig(ctx context.Context, configID primitive.ObjectID) (*models.DrawConfig, error) {
	cfg, err := s.configRepo.FindByID(ctx, configID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to retrieve draw configuration: %w", err)
	}
	return cfg, nil
}

// ExecuteDraw runs a scheduled draw to completion. The entry mutations,
// winner records and the status flip commit as one transaction, and the flip
// itself is conditional on the configuration still being SCHEDULED, so a
// concurrent executor loses the race cleanly with ErrDrawNotScheduled.
func (s *DrawServiceImpl) ExecuteDraw(ctx context.Context, configID primitive.ObjectID) (*models.DrawResult, error) {
	cfg, err := s.configRepo.FindByID(ctx, configID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrConfigNotFound
		}
		slog.Error("ExecuteDraw: failed to load configuration", "error", err, "configId", configID.Hex())
		return nil, fmt.Errorf("failed to load draw configuration: %w", err)
	}
	if cfg.Status != models.DrawStatusScheduled {
		slog.Warn("ExecuteDraw: configuration not in SCHEDULED state", "configId", configID.Hex(), "status", cfg.Status)
		return nil, ErrDrawNotScheduled
	}

	var result *models.DrawResult
	err = s.txn.RunInTransaction(ctx, func(ctx context.Context) error {
		entries, err := s.entryRepo.FindNonWinning(ctx, configID)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		if len(entries) == 0 {
			return ErrNoEntries
		}

		pool, err := eligiblePool(entries, cfg)
		if err != nil {
			return err
		}

		if err := rng.Shuffle(s.random, len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		}); err != nil {
			return fmt.Errorf("failed to shuffle eligible pool: %w", err)
		}

		// selectionOrder continues across the event's entire draw history
		existingWinners, err := s.winnerRepo.CountByEvent(ctx, cfg.EventID)
		if err != nil {
			return fmt.Errorf("failed to count existing winners: %w", err)
		}

		allocations := allocateWinners(pool, cfg.PrizeTiers, int(existingWinners)+1)
		winners := make([]*models.Winner, 0, len(allocations))
		for _, alloc := range allocations {
			if err := s.entryRepo.MarkWinner(ctx, alloc.Entry.ID, alloc.Tier.Tier); err != nil {
				return fmt.Errorf("failed to mark entry %s as winner: %w", alloc.Entry.ID.Hex(), err)
			}
			name, imageURL := resolveDisplay(ctx, s.photoRepo, alloc.Entry)
			winner := &models.Winner{
				EventID:          cfg.EventID,
				EntryID:          alloc.Entry.ID,
				ParticipantName:  name,
				DisplayImageURL:  imageURL,
				PrizeTier:        alloc.Tier.Tier,
				PrizeName:        alloc.Tier.Name,
				PrizeDescription: alloc.Tier.Description,
				SelectionOrder:   alloc.SelectionOrder,
			}
			if err := s.winnerRepo.Create(ctx, winner); err != nil {
				return fmt.Errorf("failed to create winner record: %w", err)
			}
			winners = append(winners, winner)
		}

		updated, err := s.configRepo.UpdateStatusIfScheduled(ctx, configID, models.DrawStatusCompleted, "")
		if err != nil {
			return fmt.Errorf("failed to complete draw configuration: %w", err)
		}
		if !updated {
			// A concurrent execution won the race; roll everything back.
			return ErrDrawNotScheduled
		}

		result = &models.DrawResult{
			Winners:         winners,
			TotalEntries:    len(entries),
			EligibleEntries: len(pool),
			WinnersSelected: len(winners),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Draw executed",
		"configId", configID.Hex(),
		"eventId", cfg.EventID.Hex(),
		"totalEntries", result.TotalEntries,
		"eligibleEntries", result.EligibleEntries,
		"winnersSelected", result.WinnersSelected)
	return result, nil
}

// CancelDraw aborts a scheduled draw. CANCELLED is terminal and no entries
// are mutated.
func (s *DrawServiceImpl) CancelDraw(ctx context.Context, configID primitive.ObjectID, reason string) error {
	if _, err := s.configRepo.FindByID(ctx, configID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to load draw configuration: %w", err)
	}

	updated, err := s.configRepo.UpdateStatusIfScheduled(ctx, configID, models.DrawStatusCancelled, reason)
	if err != nil {
		slog.Error("CancelDraw: failed to update status", "error", err, "configId", configID.Hex())
		return fmt.Errorf("failed to cancel draw: %w", err)
	}
	if !updated {
		return ErrDrawNotScheduled
	}

	slog.Info("Draw cancelled", "configId", configID.Hex(), "reason", reason)
	return nil
}

// GetWinnersByEvent retrieves all winners for an event in selection order
func (s *DrawServiceImpl) GetWinnersByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.Winner, error) {
	winners, err := s.winnerRepo.FindByEvent(ctx, eventID)
	if err != nil {
		slog.Error("Failed to get winners by event", "error", err, "eventId", eventID.Hex())
		return nil, fmt.Errorf("failed to retrieve winners: %w", err)
	}
	return winners, nil
}
