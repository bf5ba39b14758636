package services

import (
	"context"
	"sort"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeState is the shared in-memory backing for the fake repositories. The
// fakes mirror the Mongo implementations' contract, including returning
// mongo.ErrNoDocuments for missing documents.
type fakeState struct {
	configs     map[primitive.ObjectID]*models.DrawConfig
	entries     map[primitive.ObjectID]*models.Entry
	entryOrder  []primitive.ObjectID
	winners     map[primitive.ObjectID]*models.Winner
	winnerOrder []primitive.ObjectID
	photos      map[primitive.ObjectID]*models.PhotoDisplayInfo
}

func newFakeState() *fakeState {
	return &fakeState{
		configs: make(map[primitive.ObjectID]*models.DrawConfig),
		entries: make(map[primitive.ObjectID]*models.Entry),
		winners: make(map[primitive.ObjectID]*models.Winner),
		photos:  make(map[primitive.ObjectID]*models.PhotoDisplayInfo),
	}
}

func (s *fakeState) addConfig(cfg *models.DrawConfig) *models.DrawConfig {
	if cfg.ID.IsZero() {
		cfg.ID = primitive.NewObjectID()
	}
	s.configs[cfg.ID] = cfg
	return cfg
}

func (s *fakeState) addEntry(entry *models.Entry) *models.Entry {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	s.entries[entry.ID] = entry
	s.entryOrder = append(s.entryOrder, entry.ID)
	return entry
}

// --- DrawConfigRepository ---

type fakeConfigRepo struct{ s *fakeState }

func (r *fakeConfigRepo) Create(ctx context.Context, cfg *models.DrawConfig) error {
	r.s.addConfig(cfg)
	return nil
}

func (r *fakeConfigRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DrawConfig, error) {
	cfg, ok := r.s.configs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *cfg
	return &copied, nil
}

func (r *fakeConfigRepo) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.DrawConfig, error) {
	var configs []*models.DrawConfig
	for _, cfg := range r.s.configs {
		if cfg.EventID == eventID {
			copied := *cfg
			configs = append(configs, &copied)
		}
	}
	return configs, nil
}

func (r *fakeConfigRepo) FindLatestScheduledByEvent(ctx context.Context, eventID primitive.ObjectID) (*models.DrawConfig, error) {
	var latest *models.DrawConfig
	for _, cfg := range r.s.configs {
		if cfg.EventID != eventID || cfg.Status != models.DrawStatusScheduled {
			continue
		}
		if latest == nil || cfg.CreatedAt.After(latest.CreatedAt) {
			latest = cfg
		}
	}
	if latest == nil {
		return nil, mongo.ErrNoDocuments
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeConfigRepo) UpdateStatusIfScheduled(ctx context.Context, id primitive.ObjectID, status models.DrawConfigStatus, reason string) (bool, error) {
	cfg, ok := r.s.configs[id]
	if !ok || cfg.Status != models.DrawStatusScheduled {
		return false, nil
	}
	cfg.Status = status
	if reason != "" {
		cfg.CancelReason = reason
	}
	return true, nil
}

func (r *fakeConfigRepo) IncrementTotalEntries(ctx context.Context, id primitive.ObjectID) error {
	if cfg, ok := r.s.configs[id]; ok {
		cfg.TotalEntries++
	}
	return nil
}

func (r *fakeConfigRepo) CountByEventAndStatus(ctx context.Context, eventID primitive.ObjectID, status models.DrawConfigStatus) (int64, error) {
	var count int64
	for _, cfg := range r.s.configs {
		if cfg.EventID == eventID && cfg.Status == status {
			count++
		}
	}
	return count, nil
}

// --- EntryRepository ---

type fakeEntryRepo struct{ s *fakeState }

func (r *fakeEntryRepo) Create(ctx context.Context, entry *models.Entry) error {
	r.s.addEntry(entry)
	return nil
}

func (r *fakeEntryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error) {
	entry, ok := r.s.entries[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeEntryRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Entry, error) {
	var entries []*models.Entry
	for _, id := range ids {
		if entry, ok := r.s.entries[id]; ok {
			copied := *entry
			entries = append(entries, &copied)
		}
	}
	return entries, nil
}

func (r *fakeEntryRepo) FindNonWinning(ctx context.Context, configID primitive.ObjectID) ([]*models.Entry, error) {
	var entries []*models.Entry
	for _, id := range r.s.entryOrder {
		entry := r.s.entries[id]
		if entry.ConfigID == configID && !entry.IsWinner {
			copied := *entry
			entries = append(entries, &copied)
		}
	}
	return entries, nil
}

func (r *fakeEntryRepo) CountByConfigAndFingerprint(ctx context.Context, configID primitive.ObjectID, fingerprint string) (int64, error) {
	var count int64
	for _, entry := range r.s.entries {
		if entry.ConfigID == configID && entry.Fingerprint == fingerprint {
			count++
		}
	}
	return count, nil
}

func (r *fakeEntryRepo) MarkWinner(ctx context.Context, id primitive.ObjectID, tier models.Tier) error {
	entry, ok := r.s.entries[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	entry.IsWinner = true
	entry.PrizeTier = tier
	return nil
}

func (r *fakeEntryRepo) ClearWinner(ctx context.Context, id primitive.ObjectID) error {
	entry, ok := r.s.entries[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	entry.IsWinner = false
	entry.PrizeTier = ""
	return nil
}

func (r *fakeEntryRepo) CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	var count int64
	for _, entry := range r.s.entries {
		if entry.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *fakeEntryRepo) CountByEventAndFingerprint(ctx context.Context, eventID primitive.ObjectID, fingerprint string) (int64, error) {
	var count int64
	for _, entry := range r.s.entries {
		if entry.EventID == eventID && entry.Fingerprint == fingerprint {
			count++
		}
	}
	return count, nil
}

func (r *fakeEntryRepo) DistinctFingerprintsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]string, error) {
	seen := make(map[string]bool)
	for _, entry := range r.s.entries {
		if entry.EventID == eventID {
			seen[entry.Fingerprint] = true
		}
	}
	fingerprints := make([]string, 0, len(seen))
	for fp := range seen {
		fingerprints = append(fingerprints, fp)
	}
	sort.Strings(fingerprints)
	return fingerprints, nil
}

func (r *fakeEntryRepo) HasWinningEntry(ctx context.Context, eventID primitive.ObjectID, fingerprint string) (bool, error) {
	for _, entry := range r.s.entries {
		if entry.EventID == eventID && entry.Fingerprint == fingerprint && entry.IsWinner {
			return true, nil
		}
	}
	return false, nil
}

// --- WinnerRepository ---

type fakeWinnerRepo struct{ s *fakeState }

func (r *fakeWinnerRepo) Create(ctx context.Context, winner *models.Winner) error {
	if winner.ID.IsZero() {
		winner.ID = primitive.NewObjectID()
	}
	copied := *winner
	r.s.winners[winner.ID] = &copied
	r.s.winnerOrder = append(r.s.winnerOrder, winner.ID)
	return nil
}

func (r *fakeWinnerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Winner, error) {
	winner, ok := r.s.winners[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *winner
	return &copied, nil
}

func (r *fakeWinnerRepo) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.Winner, error) {
	var winners []*models.Winner
	for _, id := range r.s.winnerOrder {
		winner := r.s.winners[id]
		if winner.EventID == eventID {
			copied := *winner
			winners = append(winners, &copied)
		}
	}
	sort.SliceStable(winners, func(i, j int) bool {
		return winners[i].SelectionOrder < winners[j].SelectionOrder
	})
	return winners, nil
}

func (r *fakeWinnerRepo) CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	var count int64
	for _, winner := range r.s.winners {
		if winner.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *fakeWinnerRepo) MaxSelectionOrderByEvent(ctx context.Context, eventID primitive.ObjectID) (int, error) {
	max := 0
	for _, winner := range r.s.winners {
		if winner.EventID == eventID && winner.SelectionOrder > max {
			max = winner.SelectionOrder
		}
	}
	return max, nil
}

func (r *fakeWinnerRepo) AnnotateReplacement(ctx context.Context, id primitive.ObjectID, reason string) (*models.Winner, error) {
	winner, ok := r.s.winners[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	winner.IsReplaced = true
	winner.ReplacementReason = reason
	if winner.PrizeDescription != "" {
		winner.PrizeDescription += " "
	}
	winner.PrizeDescription += "[REPLACED]"
	copied := *winner
	return &copied, nil
}

// --- PhotoRepository ---

type fakePhotoRepo struct{ s *fakeState }

func (r *fakePhotoRepo) GetDisplayInfo(ctx context.Context, id primitive.ObjectID) (*models.PhotoDisplayInfo, error) {
	info, ok := r.s.photos[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *info
	return &copied, nil
}

// --- TransactionRunner ---

// fakeTxn runs the body directly; transactional rollback is a property of
// the Mongo implementation, not of the orchestration under test.
type fakeTxn struct{}

func (fakeTxn) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
