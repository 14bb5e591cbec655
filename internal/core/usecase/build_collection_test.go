package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	kind    domain.Kind
	records []domain.RawRecord
	err     error
}

func (s *fakeSource) Kind() domain.Kind { return s.kind }

func (s *fakeSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	return s.records, s.err
}

type fakeDirectory struct {
	names  map[string]string
	err    error
	gotIDs []string
	calls  int
}

func (d *fakeDirectory) ResolveArrondissements(ctx context.Context, ids []string) (map[string]string, error) {
	d.calls++
	d.gotIDs = ids
	return d.names, d.err
}

func TestBuildCollection_MergesEveryKind(t *testing.T) {
	directory := &fakeDirectory{names: map[string]string{}}
	uc := NewBuildCollectionUseCase(directory,
		&fakeSource{kind: domain.KindAllotment, records: []domain.RawRecord{
			{"allotment_code": "LOT-1", "label": "Lotissement A"},
		}},
		&fakeSource{kind: domain.KindBuilding, records: []domain.RawRecord{
			{"building_code": "BLD-1", "name": "Immeuble B"},
			{"building_code": "BLD-2", "name": "Immeuble C"},
		}},
	)

	collection, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, collection.Properties, 3)
	assert.Empty(t, collection.SourceErrors)

	// Merge order follows source registration order regardless of which
	// fetch finished first.
	assert.Equal(t, "allotment:LOT-1", collection.Properties[0].ID)
	assert.Equal(t, "building:BLD-1", collection.Properties[1].ID)
	assert.Equal(t, "building:BLD-2", collection.Properties[2].ID)
}

func TestBuildCollection_OneFailingKindDegrades(t *testing.T) {
	fetchErr := errors.New("connection refused")
	directory := &fakeDirectory{names: map[string]string{}}
	uc := NewBuildCollectionUseCase(directory,
		&fakeSource{kind: domain.KindParcel, err: fetchErr},
		&fakeSource{kind: domain.KindBuilding, records: []domain.RawRecord{
			{"building_code": "BLD-1", "name": "Immeuble B"},
		}},
	)

	collection, err := uc.Execute(context.Background())
	require.NoError(t, err, "a partial build is a success, not an error")

	require.Len(t, collection.Properties, 1)
	assert.Equal(t, "building:BLD-1", collection.Properties[0].ID)

	require.Contains(t, collection.SourceErrors, domain.KindParcel)
	assert.ErrorIs(t, collection.SourceErrors[domain.KindParcel], fetchErr)
}

func TestBuildCollection_AllKindsFailingYieldsEmptyCollection(t *testing.T) {
	directory := &fakeDirectory{}
	uc := NewBuildCollectionUseCase(directory,
		&fakeSource{kind: domain.KindParcel, err: errors.New("down")},
		&fakeSource{kind: domain.KindBuilding, err: errors.New("down")},
	)

	collection, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, collection.Properties)
	assert.Len(t, collection.SourceErrors, 2)
	assert.Zero(t, directory.calls, "nothing to resolve for an empty collection")
}

func TestBuildCollection_ResolvesLocationsInOneBatch(t *testing.T) {
	directory := &fakeDirectory{names: map[string]string{
		"17": "Cotonou 17, Littoral, Littoral",
	}}
	uc := NewBuildCollectionUseCase(directory,
		&fakeSource{kind: domain.KindBuilding, records: []domain.RawRecord{
			{"building_code": "BLD-1", "arrondissement_id": "17"},
			{"building_code": "BLD-2", "arrondissement_id": "17"},
			{"building_code": "BLD-3", "arrondissement_id": "99"},
		}},
	)

	collection, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, directory.calls)
	assert.ElementsMatch(t, []string{"17", "99"}, directory.gotIDs, "duplicate locators are deduplicated")

	assert.Equal(t, "Cotonou 17, Littoral, Littoral", collection.Properties[0].Location)
	assert.Equal(t, "Cotonou 17, Littoral, Littoral", collection.Properties[1].Location)
	assert.Empty(t, collection.Properties[2].Location, "unresolvable locator leaves the location empty")
}

func TestBuildCollection_DirectoryFailureLeavesLocationsEmpty(t *testing.T) {
	directory := &fakeDirectory{err: errors.New("directory down")}
	uc := NewBuildCollectionUseCase(directory,
		&fakeSource{kind: domain.KindBuilding, records: []domain.RawRecord{
			{"building_code": "BLD-1", "arrondissement_id": "17"},
		}},
	)

	collection, err := uc.Execute(context.Background())
	require.NoError(t, err, "location resolution is an enrichment, not a gate")
	require.Len(t, collection.Properties, 1)
	assert.Empty(t, collection.Properties[0].Location)
	assert.Equal(t, "17", collection.Properties[0].LocationRef)
}
