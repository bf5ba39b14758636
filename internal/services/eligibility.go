package services

import "github.com/eventpix/luckydraw-backend/internal/models"

// eligiblePool reduces the non-winning entries of a configuration to the
// subset eligible for the current draw. Entries are grouped by fingerprint
// preserving submission order; each group keeps at most one entry when
// duplicate winners are prevented, otherwise up to maxEntriesPerUser.
func eligiblePool(entries []*models.Entry, cfg *models.DrawConfig) ([]*models.Entry, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	limit := cfg.MaxEntriesPerUser
	if cfg.PreventDuplicateWinners {
		limit = 1
	}
	if limit < 1 {
		limit = 1
	}

	kept := make(map[string]int, len(entries))
	pool := make([]*models.Entry, 0, len(entries))
	for _, entry := range entries {
		if kept[entry.Fingerprint] >= limit {
			continue
		}
		kept[entry.Fingerprint]++
		pool = append(pool, entry)
	}

	if len(pool) == 0 {
		return nil, ErrNoEligibleEntries
	}
	return pool, nil
}
