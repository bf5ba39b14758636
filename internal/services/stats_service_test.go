package services

import (
	"context"
	"testing"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetEventStats(t *testing.T) {
	s := newFakeState()
	eventID := primitive.NewObjectID()
	cfg := s.addConfig(&models.DrawConfig{
		EventID: eventID,
		Status:  models.DrawStatusCompleted,
	})
	s.addConfig(&models.DrawConfig{
		EventID: eventID,
		Status:  models.DrawStatusScheduled,
	})

	addEntries(s, eventID, cfg.ID, "fp-a", "fp-a", "fp-b", "fp-c")
	s.entries[s.entryOrder[0]].IsWinner = true
	_ = (&fakeWinnerRepo{s}).Create(context.Background(), &models.Winner{
		EventID: eventID, EntryID: s.entryOrder[0], SelectionOrder: 1,
	})

	// a different event's data must not leak into the rollup
	otherEvent := primitive.NewObjectID()
	otherCfg := s.addConfig(&models.DrawConfig{EventID: otherEvent, Status: models.DrawStatusCompleted})
	addEntries(s, otherEvent, otherCfg.ID, "fp-z")

	svc := NewStatsService(&fakeConfigRepo{s}, &fakeEntryRepo{s}, &fakeWinnerRepo{s})
	stats, err := svc.GetEventStats(context.Background(), eventID)
	if err != nil {
		t.Fatalf("GetEventStats returned error: %v", err)
	}

	if stats.TotalEntries != 4 {
		t.Errorf("TotalEntries = %d, want 4", stats.TotalEntries)
	}
	if stats.UniqueParticipants != 3 {
		t.Errorf("UniqueParticipants = %d, want 3", stats.UniqueParticipants)
	}
	if stats.CompletedDraws != 1 {
		t.Errorf("CompletedDraws = %d, want 1", stats.CompletedDraws)
	}
	if stats.TotalWinners != 1 {
		t.Errorf("TotalWinners = %d, want 1", stats.TotalWinners)
	}
}

func TestGetParticipantStats(t *testing.T) {
	s := newFakeState()
	eventID := primitive.NewObjectID()
	cfg := s.addConfig(&models.DrawConfig{EventID: eventID, Status: models.DrawStatusCompleted})
	entries := addEntries(s, eventID, cfg.ID, "fp-a", "fp-a", "fp-b")
	entries[0].IsWinner = true

	svc := NewStatsService(&fakeConfigRepo{s}, &fakeEntryRepo{s}, &fakeWinnerRepo{s})

	t.Run("winner", func(t *testing.T) {
		stats, err := svc.GetParticipantStats(context.Background(), eventID, "fp-a")
		if err != nil {
			t.Fatalf("GetParticipantStats returned error: %v", err)
		}
		if stats.EntryCount != 2 || !stats.HasWon {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("non-winner", func(t *testing.T) {
		stats, err := svc.GetParticipantStats(context.Background(), eventID, "fp-b")
		if err != nil {
			t.Fatalf("GetParticipantStats returned error: %v", err)
		}
		if stats.EntryCount != 1 || stats.HasWon {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("unknown participant has zero entries", func(t *testing.T) {
		stats, err := svc.GetParticipantStats(context.Background(), eventID, "fp-ghost")
		if err != nil {
			t.Fatalf("GetParticipantStats returned error: %v", err)
		}
		if stats.EntryCount != 0 || stats.HasWon {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})
}
