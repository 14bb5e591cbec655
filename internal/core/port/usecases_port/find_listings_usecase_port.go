package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type FindListingsUseCase interface {
	// Execute runs search, filter, sort and pagination over the current
	// snapshot. Public callers must set Criteria.Published; admin callers
	// may leave it nil to see unpublished listings too.
	Execute(ctx context.Context, params domain.FindListingsParams) (*domain.ListingsPage, error)
}
