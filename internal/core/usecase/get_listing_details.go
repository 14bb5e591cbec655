package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetListingDetailsUseCase struct {
	snapshot port.SnapshotPort
}

func NewGetListingDetailsUseCase(snapshot port.SnapshotPort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{snapshot: snapshot}
}

func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, listingID string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingDetails",
		"listing_id": listingID,
	})

	collection, err := uc.snapshot.Get(ctx)
	if err != nil {
		ucLogger.Error("Snapshot unavailable", err, nil)
		return nil, err
	}

	for i := range collection.Properties {
		if collection.Properties[i].ID == listingID {
			found := collection.Properties[i]
			return &found, nil
		}
	}

	ucLogger.Debug("Listing not found in current collection", nil)
	return nil, domain.ErrListingNotFound
}
