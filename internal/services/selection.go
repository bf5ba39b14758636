package services

import (
	"sort"

	"github.com/eventpix/luckydraw-backend/internal/models"
)

// allocation pairs an eligible entry with the tier slot it won
type allocation struct {
	Entry          *models.Entry
	Tier           models.PrizeTier
	SelectionOrder int
}

// allocateWinners assigns entries from the shuffled pool to prize tiers in
// rank order (grand before first before second, and so on) irrespective of
// the order tiers were declared in the configuration. Within a tier, entries
// are consumed strictly in shuffle order. Selection orders are dense and
// start at startOrder. When the pool is exhausted allocation stops silently;
// an under-filled tier is reported through the winnersSelected statistic,
// not as an error.
func allocateWinners(pool []*models.Entry, tiers []models.PrizeTier, startOrder int) []allocation {
	ordered := make([]models.PrizeTier, len(tiers))
	copy(ordered, tiers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Tier.Rank() < ordered[j].Tier.Rank()
	})

	var allocations []allocation
	next := 0
	order := startOrder
	for _, tier := range ordered {
		for slot := 0; slot < tier.Count; slot++ {
			if next >= len(pool) {
				return allocations
			}
			allocations = append(allocations, allocation{
				Entry:          pool[next],
				Tier:           tier,
				SelectionOrder: order,
			})
			next++
			order++
		}
	}
	return allocations
}
