package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/query"
)

// FindListingsUseCase composes the query engine over the current snapshot:
// search narrows, filter narrows further, sort reorders, then the page
// window applies.
type FindListingsUseCase struct {
	snapshot port.SnapshotPort
}

func NewFindListingsUseCase(snapshot port.SnapshotPort) *FindListingsUseCase {
	return &FindListingsUseCase{snapshot: snapshot}
}

func (uc *FindListingsUseCase) Execute(ctx context.Context, params domain.FindListingsParams) (*domain.ListingsPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindListings",
		"query":    params.Query,
		"sort":     string(params.Sort),
	})

	collection, err := uc.snapshot.Get(ctx)
	if err != nil {
		ucLogger.Error("Snapshot unavailable", err, nil)
		return nil, err
	}

	matched := query.Search(collection.Properties, params.Query)
	matched = query.Filter(matched, params.Criteria)

	if params.Sort != "" {
		matched, err = query.Sort(matched, params.Sort)
		if err != nil {
			// A malformed sort option is a caller error, not a degradation.
			return nil, err
		}
	}

	page := &domain.ListingsPage{
		Listings:     paginate(matched, params.Limit, params.Offset),
		TotalCount:   len(matched),
		SourceErrors: collection.SourceErrors,
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   page.TotalCount,
		"items_on_page": len(page.Listings),
	})
	return page, nil
}

func paginate(properties []domain.Property, limit, offset int) []domain.Property {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(properties) {
		return []domain.Property{}
	}
	end := len(properties)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return properties[offset:end]
}
