package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type GetSimilarListingsUseCase interface {
	// Execute returns up to limit published listings similar to the target.
	// An unknown target yields an empty result, not an error: "no similar
	// properties found" is a valid outcome.
	Execute(ctx context.Context, listingID string, limit int) ([]domain.Property, error)
}
