package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// SnapshotPort hands out a point-in-time unified collection. Staleness is
// the implementation's decision; Invalidate forces the next Get to rebuild.
type SnapshotPort interface {
	Get(ctx context.Context) (*domain.Collection, error)
	Invalidate()
}
