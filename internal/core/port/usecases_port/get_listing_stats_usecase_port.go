package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type GetListingStatsUseCase interface {
	Execute(ctx context.Context) (domain.ListingStats, error)
}
