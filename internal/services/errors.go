package services

import "errors"

// Recoverable failure conditions surfaced to callers. All are detected
// before any irreversible mutation, so a caller receiving one of these can
// retry or report without cleanup.
var (
	ErrConfigNotFound             = errors.New("draw configuration not found")
	ErrDrawNotScheduled           = errors.New("draw is not in SCHEDULED state")
	ErrNoEntries                  = errors.New("no entries exist for this draw")
	ErrNoEligibleEntries          = errors.New("entries exist but none are eligible under the duplicate rules")
	ErrPrizeTierNotFound          = errors.New("prize tier is not part of the draw configuration")
	ErrNoEligibleEntriesForRedraw = errors.New("no eligible entries remain for redraw")
	ErrMaxEntriesPerUser          = errors.New("maximum entries per user reached")
	ErrScheduledConfigExists      = errors.New("a scheduled draw configuration already exists for this event")
)
