package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SweepUsecase clears manual closures left over from previous days
type SweepUsecase interface {
	// SweepStaleClosures resets outdated closures across all tenants and
	// returns the IDs of tenants whose schedule changed.
	SweepStaleClosures(ctx context.Context) ([]uuid.UUID, error)
}
