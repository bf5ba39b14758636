package services

import (
	"context"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

const anonymousName = "Anonymous"

// resolveDisplay resolves the denormalized display fields for a winner record
// from the entry and, if present, its linked photo. A missing or unreadable
// photo falls back to the entry's own fields rather than failing the award.
func resolveDisplay(ctx context.Context, photoRepo repositories.PhotoRepository, entry *models.Entry) (name, imageURL string) {
	name = entry.ParticipantName
	if entry.PhotoID != nil && photoRepo != nil {
		info, err := photoRepo.GetDisplayInfo(ctx, *entry.PhotoID)
		if err != nil {
			slog.Warn("Failed to resolve photo display info", "error", err, "photoId", entry.PhotoID.Hex())
		} else {
			imageURL = info.ImageURL
			if name == "" {
				name = info.ParticipantName
			}
		}
	}
	if name == "" {
		name = anonymousName
	}
	return name, imageURL
}
