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

// Compile-time check to ensure RedrawServiceImpl implements RedrawService
var _ RedrawService = (*RedrawServiceImpl)(nil)

// RedrawServiceImpl replaces a winner for one prize tier after a draw has
// completed, preserving the full audit history: the replaced Winner record
// is annotated in place and a fresh redraw-marked record is appended.
type RedrawServiceImpl struct {
	configRepo repositories.DrawConfigRepository
	entryRepo  repositories.EntryRepository
	winnerRepo repositories.WinnerRepository
	photoRepo  repositories.PhotoRepository
	txn        repositories.TransactionRunner
	random     rng.Source
}

// NewRedrawService creates a new RedrawServiceImpl
func NewRedrawService(
	configRepo repositories.DrawConfigRepository,
	entryRepo repositories.EntryRepository,
	winnerRepo repositories.WinnerRepository,
	photoRepo repositories.PhotoRepository,
	txn repositories.TransactionRunner,
	random rng.Source,
) *RedrawServiceImpl {
	return &RedrawServiceImpl{
		configRepo: configRepo,
		entryRepo:  entryRepo,
		winnerRepo: winnerRepo,
		photoRepo:  photoRepo,
		txn:        txn,
		random:     random,
	}
}

// Redraw selects a fresh winner for the given tier. When previousWinnerID is
// supplied, that winner's record is annotated as replaced and its entry is
// returned to the eligible pool. The new winner is drawn from non-winning
// entries whose fingerprint does not collide with any currently standing
// winner for the event. The configuration status is not touched; redraws may
// run any number of times after completion.
func (s *RedrawServiceImpl) Redraw(ctx context.Context, configID primitive.ObjectID, tier models.Tier, previousWinnerID *primitive.ObjectID, reason string) (*models.RedrawResult, error) {
	cfg, err := s.configRepo.FindByID(ctx, configID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrConfigNotFound
		}
		slog.Error("Redraw: failed to load configuration", "error", err, "configId", configID.Hex())
		return nil, fmt.Errorf("failed to load draw configuration: %w", err)
	}

	var tierDef *models.PrizeTier
	for i := range cfg.PrizeTiers {
		if cfg.PrizeTiers[i].Tier == tier {
			tierDef = &cfg.PrizeTiers[i]
			break
		}
	}
	if tierDef == nil {
		return nil, ErrPrizeTierNotFound
	}

	var result *models.RedrawResult
	err = s.txn.RunInTransaction(ctx, func(ctx context.Context) error {
		var previous *models.Winner
		freedFingerprint := ""
		if previousWinnerID != nil {
			previous, err = s.winnerRepo.AnnotateReplacement(ctx, *previousWinnerID, reason)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					return fmt.Errorf("previous winner %s not found", previousWinnerID.Hex())
				}
				return fmt.Errorf("failed to annotate previous winner: %w", err)
			}
			prevEntry, err := s.entryRepo.FindByID(ctx, previous.EntryID)
			if err != nil {
				return fmt.Errorf("failed to load previous winner's entry: %w", err)
			}
			freedFingerprint = prevEntry.Fingerprint
			if err := s.entryRepo.ClearWinner(ctx, previous.EntryID); err != nil {
				return fmt.Errorf("failed to return previous winner's entry to the pool: %w", err)
			}
		}

		excluded, err := s.standingFingerprints(ctx, cfg.EventID, freedFingerprint)
		if err != nil {
			return err
		}

		candidates, err := s.entryRepo.FindNonWinning(ctx, configID)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		pool := make([]*models.Entry, 0, len(candidates))
		for _, entry := range candidates {
			if excluded[entry.Fingerprint] {
				continue
			}
			pool = append(pool, entry)
		}
		if len(pool) == 0 {
			return ErrNoEligibleEntriesForRedraw
		}

		if err := rng.Shuffle(s.random, len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		}); err != nil {
			return fmt.Errorf("failed to shuffle redraw pool: %w", err)
		}
		selected := pool[0]

		maxOrder, err := s.winnerRepo.MaxSelectionOrderByEvent(ctx, cfg.EventID)
		if err != nil {
			return fmt.Errorf("failed to determine selection order: %w", err)
		}

		if err := s.entryRepo.MarkWinner(ctx, selected.ID, tier); err != nil {
			return fmt.Errorf("failed to mark entry %s as winner: %w", selected.ID.Hex(), err)
		}
		name, imageURL := resolveDisplay(ctx, s.photoRepo, selected)
		winner := &models.Winner{
			EventID:          cfg.EventID,
			EntryID:          selected.ID,
			ParticipantName:  name,
			DisplayImageURL:  imageURL,
			PrizeTier:        tierDef.Tier,
			PrizeName:        tierDef.Name,
			PrizeDescription: tierDef.Description,
			SelectionOrder:   maxOrder + 1,
			IsRedraw:         true,
			RedrawReason:     reason,
		}
		if err := s.winnerRepo.Create(ctx, winner); err != nil {
			return fmt.Errorf("failed to create redraw winner record: %w", err)
		}

		result = &models.RedrawResult{NewWinner: winner, PreviousWinner: previous}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Redraw completed",
		"configId", configID.Hex(),
		"tier", tier,
		"newWinnerEntryId", result.NewWinner.EntryID.Hex(),
		"replacedPrevious", result.PreviousWinner != nil)
	return result, nil
}

// standingFingerprints collects the fingerprints of every winner for the
// event that has not itself been replaced. The fingerprint freed by the
// winner being replaced in this redraw is excluded from the set.
func (s *RedrawServiceImpl) standingFingerprints(ctx context.Context, eventID primitive.ObjectID, freed string) (map[string]bool, error) {
	winners, err := s.winnerRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load standing winners: %w", err)
	}

	entryIDs := make([]primitive.ObjectID, 0, len(winners))
	for _, w := range winners {
		if w.IsReplaced {
			continue
		}
		entryIDs = append(entryIDs, w.EntryID)
	}

	entries, err := s.entryRepo.FindByIDs(ctx, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load standing winners' entries: %w", err)
	}

	excluded := make(map[string]bool, len(entries))
	for _, entry := range entries {
		excluded[entry.Fingerprint] = true
	}
	if freed != "" {
		delete(excluded, freed)
	}
	return excluded, nil
}
