package models

// Tier identifies a ranked prize category
type Tier string

const (
	TierGrand       Tier = "grand"
	TierFirst       Tier = "first"
	TierSecond      Tier = "second"
	TierThird       Tier = "third"
	TierConsolation Tier = "consolation"
)

// tierRanks orders tiers for winner allocation. Lower rank is filled first.
var tierRanks = map[Tier]int{
	TierGrand:       0,
	TierFirst:       1,
	TierSecond:      2,
	TierThird:       3,
	TierConsolation: 4,
}

// Rank returns the allocation rank of the tier. Unknown tiers sort last.
func (t Tier) Rank() int {
	if rank, ok := tierRanks[t]; ok {
		return rank
	}
	return len(tierRanks)
}

// IsValid reports whether the tier is one of the known categories
func (t Tier) IsValid() bool {
	_, ok := tierRanks[t]
	return ok
}

// PrizeTier defines one ranked prize category within a draw configuration
type PrizeTier struct {
	Tier        Tier   `bson:"tier" json:"tier"`
	Name        string `bson:"name" json:"name"`
	Count       int    `bson:"count" json:"count"` // number of winner slots for this tier
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}
