package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/query"
)

type GetListingStatsUseCase struct {
	snapshot port.SnapshotPort
}

func NewGetListingStatsUseCase(snapshot port.SnapshotPort) *GetListingStatsUseCase {
	return &GetListingStatsUseCase{snapshot: snapshot}
}

func (uc *GetListingStatsUseCase) Execute(ctx context.Context) (domain.ListingStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetListingStats"})

	collection, err := uc.snapshot.Get(ctx)
	if err != nil {
		ucLogger.Error("Snapshot unavailable", err, nil)
		return domain.ListingStats{}, err
	}

	stats := query.Stats(collection.Properties)
	ucLogger.Info("Use case finished successfully", port.Fields{"published": stats.Published})
	return stats, nil
}
