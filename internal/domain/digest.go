package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventDigest is a model-written summary of the upcoming event schedule.
type EventDigest struct {
	ID          uuid.UUID
	Content     string
	Model       string
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
}

// EventDigestRepository defines the interface for managing event digests.
type EventDigestRepository interface {
	// SaveEventDigest persists a generated digest.
	SaveEventDigest(ctx context.Context, digest EventDigest) error
	// GetLatestEventDigest returns the most recent digest, a boolean indicating if one exists, and an error if any.
	GetLatestEventDigest(ctx context.Context) (EventDigest, bool, error)
}
