package usecase

import (
	"context"
	"fmt"
	"sync"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/normalize"
	"listing-service/internal/core/port"
)

// BuildCollectionUseCase fetches every supported kind concurrently,
// normalizes the results and merges them into one unified collection.
// This is the only place allowed to see raw records from more than one
// kind at once.
type BuildCollectionUseCase struct {
	sources   []port.RecordSourcePort
	directory port.LocationDirectoryPort
}

func NewBuildCollectionUseCase(directory port.LocationDirectoryPort, sources ...port.RecordSourcePort) *BuildCollectionUseCase {
	return &BuildCollectionUseCase{
		sources:   sources,
		directory: directory,
	}
}

// kindResult is one source's settled outcome. Each concurrent fetch writes
// only into its own slot, so the merge needs no locking once every fetch
// has settled.
type kindResult struct {
	kind    domain.Kind
	records []domain.RawRecord
	err     error
}

func (uc *BuildCollectionUseCase) Execute(ctx context.Context) (*domain.Collection, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "BuildCollection"})

	ucLogger.Debug("Use case started", port.Fields{"sources": len(uc.sources)})

	results := make([]kindResult, len(uc.sources))

	var wg sync.WaitGroup
	for i, source := range uc.sources {
		wg.Add(1)
		go func(slot int, src port.RecordSourcePort) {
			defer wg.Done()
			records, err := src.Fetch(ctx)
			results[slot] = kindResult{kind: src.Kind(), records: records, err: err}
		}(i, source)
	}
	wg.Wait()

	collection := &domain.Collection{
		Properties:   make([]domain.Property, 0),
		SourceErrors: make(map[domain.Kind]error),
	}

	// One kind's failure degrades its contribution to empty; partial
	// results always beat no results.
	for _, res := range results {
		if res.err != nil {
			ucLogger.Warn("Record source failed, contributing zero properties", port.Fields{
				"kind":  string(res.kind),
				"error": res.err.Error(),
			})
			collection.SourceErrors[res.kind] = fmt.Errorf("fetch %s records: %w", res.kind, res.err)
			continue
		}
		for _, raw := range res.records {
			collection.Properties = append(collection.Properties, normalize.Normalize(raw, res.kind))
		}
	}

	uc.resolveLocations(ctx, ucLogger, collection.Properties)

	ucLogger.Info("Use case finished", port.Fields{
		"properties":   len(collection.Properties),
		"failed_kinds": len(collection.SourceErrors),
	})

	return collection, nil
}

// resolveLocations batch-resolves the distinct arrondissement locators into
// readable location chains. A directory failure leaves locations empty
// rather than failing the build.
func (uc *BuildCollectionUseCase) resolveLocations(ctx context.Context, logger port.LoggerPort, properties []domain.Property) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, p := range properties {
		if p.LocationRef == "" {
			continue
		}
		if _, ok := seen[p.LocationRef]; ok {
			continue
		}
		seen[p.LocationRef] = struct{}{}
		ids = append(ids, p.LocationRef)
	}
	if len(ids) == 0 {
		return
	}

	names, err := uc.directory.ResolveArrondissements(ctx, ids)
	if err != nil {
		logger.Warn("Location resolution failed, leaving locations empty", port.Fields{"error": err.Error()})
		return
	}

	for i := range properties {
		if name, ok := names[properties[i].LocationRef]; ok {
			properties[i].Location = name
		}
	}
}
