package services

import (
	"context"
	"fmt"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure StatsServiceImpl implements StatsService
var _ StatsService = (*StatsServiceImpl)(nil)

// StatsServiceImpl produces read-only rollups for dashboards. No side
// effects.
type StatsServiceImpl struct {
	configRepo repositories.DrawConfigRepository
	entryRepo  repositories.EntryRepository
	winnerRepo repositories.WinnerRepository
}

// NewStatsService creates a new StatsServiceImpl
func NewStatsService(
	configRepo repositories.DrawConfigRepository,
	entryRepo repositories.EntryRepository,
	winnerRepo repositories.WinnerRepository,
) *StatsServiceImpl {
	return &StatsServiceImpl{
		configRepo: configRepo,
		entryRepo:  entryRepo,
		winnerRepo: winnerRepo,
	}
}

// GetEventStats aggregates entry, participant, draw and winner counts for an event
func (s *StatsServiceImpl) GetEventStats(ctx context.Context, eventID primitive.ObjectID) (*models.EventStats, error) {
	totalEntries, err := s.entryRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}
	fingerprints, err := s.entryRepo.DistinctFingerprintsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unique participants: %w", err)
	}
	completedDraws, err := s.configRepo.CountByEventAndStatus(ctx, eventID, models.DrawStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed draws: %w", err)
	}
	totalWinners, err := s.winnerRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count winners: %w", err)
	}

	return &models.EventStats{
		TotalEntries:       totalEntries,
		UniqueParticipants: len(fingerprints),
		CompletedDraws:     completedDraws,
		TotalWinners:       totalWinners,
	}, nil
}

// GetParticipantStats summarises one participant's entries and winner status
func (s *StatsServiceImpl) GetParticipantStats(ctx context.Context, eventID primitive.ObjectID, fingerprint string) (*models.ParticipantStats, error) {
	entryCount, err := s.entryRepo.CountByEventAndFingerprint(ctx, eventID, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to count participant entries: %w", err)
	}
	hasWon, err := s.entryRepo.HasWinningEntry(ctx, eventID, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to check participant winner status: %w", err)
	}

	return &models.ParticipantStats{
		Fingerprint: fingerprint,
		EntryCount:  entryCount,
		HasWon:      hasWon,
	}, nil
}
