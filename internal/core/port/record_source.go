package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// RecordSourcePort fetches a point-in-time snapshot of one cadastral kind's
// raw records. A fetch either returns the full list or fails as a whole;
// timeouts are this adapter's responsibility and surface as ordinary errors.
type RecordSourcePort interface {
	Kind() domain.Kind
	Fetch(ctx context.Context) ([]domain.RawRecord, error)
}
