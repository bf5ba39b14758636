package models

// DrawResult is returned by a successful draw execution
type DrawResult struct {
	Winners         []*Winner `json:"winners"`
	TotalEntries    int       `json:"totalEntries"`
	EligibleEntries int       `json:"eligibleEntries"`
	WinnersSelected int       `json:"winnersSelected"`
}

// RedrawResult is returned by a redraw. PreviousWinner is nil when the
// redraw drew an additional winner rather than replacing a named one.
type RedrawResult struct {
	NewWinner      *Winner `json:"newWinner"`
	PreviousWinner *Winner `json:"previousWinner,omitempty"`
}

// EventStats is a read-only rollup for dashboards
type EventStats struct {
	TotalEntries       int64 `json:"totalEntries"`
	UniqueParticipants int   `json:"uniqueParticipants"`
	CompletedDraws     int64 `json:"completedDraws"`
	TotalWinners       int64 `json:"totalWinners"`
}

// ParticipantStats summarises one participant's standing within an event
type ParticipantStats struct {
	Fingerprint string `json:"fingerprint"`
	EntryCount  int64  `json:"entryCount"`
	HasWon      bool   `json:"hasWon"`
}
