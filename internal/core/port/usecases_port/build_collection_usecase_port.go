package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type BuildCollectionUseCase interface {
	Execute(ctx context.Context) (*domain.Collection, error)
}
