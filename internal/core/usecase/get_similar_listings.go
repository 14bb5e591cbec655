package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/query"
	"listing-service/internal/core/recommend"
)

type GetSimilarListingsUseCase struct {
	snapshot port.SnapshotPort
}

func NewGetSimilarListingsUseCase(snapshot port.SnapshotPort) *GetSimilarListingsUseCase {
	return &GetSimilarListingsUseCase{snapshot: snapshot}
}

func (uc *GetSimilarListingsUseCase) Execute(ctx context.Context, listingID string, limit int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetSimilarListings",
		"listing_id": listingID,
		"limit":      limit,
	})

	collection, err := uc.snapshot.Get(ctx)
	if err != nil {
		ucLogger.Error("Snapshot unavailable", err, nil)
		return nil, err
	}

	var target *domain.Property
	for i := range collection.Properties {
		if collection.Properties[i].ID == listingID {
			target = &collection.Properties[i]
			break
		}
	}
	if target == nil {
		// Unknown target: "no similar properties" is a valid outcome.
		ucLogger.Debug("Recommendation target not in pool", nil)
		return []domain.Property{}, nil
	}

	published := true
	pool := query.Filter(collection.Properties, domain.FilterCriteria{Published: &published})

	similar := recommend.Similar(*target, pool, limit)
	ucLogger.Info("Use case finished successfully", port.Fields{"recommendations": len(similar)})
	return similar, nil
}
