package query

import (
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

func fixture() []domain.Property {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Property{
		{
			ID: "building:1", Title: "Villa Cocotiers", Type: domain.TypeVilla,
			Location: "Cotonou, Littoral, Littoral", Price: fptr(150_000_000),
			Bedrooms: iptr(5), ForSale: true, HasParking: true,
			Published: true, Featured: true, CreatedAt: base.AddDate(0, 2, 0),
		},
		{
			ID: "building:2", Title: "Studio centre-ville", Type: domain.TypeStudio,
			Location: "Cotonou, Littoral, Littoral", Price: fptr(25_000_000),
			Bedrooms: iptr(1), ForRent: true,
			Published: true, CreatedAt: base.AddDate(0, 1, 0),
		},
		{
			ID: "parcel:3", Title: "Terrain Calavi", Type: domain.TypeLand,
			Location: "Abomey-Calavi, Atlantique, Atlantique", Price: nil,
			ForSale: true, Published: true, CreatedAt: base,
		},
		{
			ID: "building:4", Title: "Bureau non publié", Type: domain.TypeOffice,
			Price: fptr(60_000_000), Published: false, CreatedAt: base.AddDate(0, 3, 0),
		},
	}
}

func TestSearch_EmptyQueryMatchesEverything(t *testing.T) {
	pool := fixture()
	assert.Equal(t, pool, Search(pool, ""))
	assert.Equal(t, pool, Search(pool, "   "))
}

func TestSearch_MatchesTitleLocationAndType(t *testing.T) {
	pool := fixture()

	byTitle := Search(pool, "villa")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "building:1", byTitle[0].ID)

	byLocation := Search(pool, "calavi")
	require.Len(t, byLocation, 1)
	assert.Equal(t, "parcel:3", byLocation[0].ID)

	byType := Search(pool, "OFFICE")
	require.Len(t, byType, 1)
	assert.Equal(t, "building:4", byType[0].ID)
}

func TestSearch_PreservesInputOrder(t *testing.T) {
	pool := fixture()
	matched := Search(pool, "cotonou")
	require.Len(t, matched, 2)
	assert.Equal(t, "building:1", matched[0].ID)
	assert.Equal(t, "building:2", matched[1].ID)
}

func TestFilter_AbsentCriteriaMatchEverything(t *testing.T) {
	pool := fixture()
	assert.Len(t, Filter(pool, domain.FilterCriteria{}), len(pool))
}

func TestFilter_CriteriaCombineAsAND(t *testing.T) {
	pool := fixture()
	matched := Filter(pool, domain.FilterCriteria{
		Published: bptr(true),
		ForSale:   bptr(true),
		MinPrice:  fptr(100_000_000),
	})
	require.Len(t, matched, 1)
	assert.Equal(t, "building:1", matched[0].ID)
}

func TestFilter_PriceBoundsSkipUnpriced(t *testing.T) {
	pool := fixture()
	// The unpriced parcel satisfies no bound, not even a generous one.
	matched := Filter(pool, domain.FilterCriteria{MaxPrice: fptr(1_000_000_000)})
	for _, p := range matched {
		assert.NotNil(t, p.Price)
	}
}

func TestFilter_MinBedrooms(t *testing.T) {
	pool := fixture()
	matched := Filter(pool, domain.FilterCriteria{MinBedrooms: iptr(2)})
	require.Len(t, matched, 1)
	assert.Equal(t, "building:1", matched[0].ID)
}

func TestSort_InvalidOption(t *testing.T) {
	_, err := Sort(fixture(), domain.SortOption("alphabetical"))
	assert.ErrorIs(t, err, domain.ErrInvalidSortOption)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	pool := fixture()
	firstID := pool[0].ID
	_, err := Sort(pool, domain.SortPriceAsc)
	require.NoError(t, err)
	assert.Equal(t, firstID, pool[0].ID)
}

func TestSort_PriceAsc_NullsLast(t *testing.T) {
	sorted, err := Sort(fixture(), domain.SortPriceAsc)
	require.NoError(t, err)
	require.Len(t, sorted, 4)
	assert.Equal(t, "building:2", sorted[0].ID)
	assert.Equal(t, "building:4", sorted[1].ID)
	assert.Equal(t, "building:1", sorted[2].ID)
	assert.Equal(t, "parcel:3", sorted[3].ID, "unpriced listing must sort last")
}

func TestSort_PriceDesc_NullsStillLast(t *testing.T) {
	sorted, err := Sort(fixture(), domain.SortPriceDesc)
	require.NoError(t, err)
	assert.Equal(t, "building:1", sorted[0].ID)
	assert.Equal(t, "parcel:3", sorted[len(sorted)-1].ID, "unpriced listing must sort last in both directions")
}

func TestSort_Newest(t *testing.T) {
	sorted, err := Sort(fixture(), domain.SortNewest)
	require.NoError(t, err)
	assert.Equal(t, "building:4", sorted[0].ID)
	assert.Equal(t, "parcel:3", sorted[len(sorted)-1].ID)
}

func TestSort_BedroomsDesc_NilCountsAsZero(t *testing.T) {
	sorted, err := Sort(fixture(), domain.SortBedroomsDesc)
	require.NoError(t, err)
	assert.Equal(t, "building:1", sorted[0].ID)
	assert.Equal(t, "building:2", sorted[1].ID)
}

func TestStats_CountsPublishedSubsetOnly(t *testing.T) {
	stats := Stats(fixture())
	assert.Equal(t, domain.ListingStats{
		Published: 3,
		ForSale:   2,
		ForRent:   1,
		Featured:  1,
	}, stats)
}

func TestStats_ConsistentWithPublishedFilter(t *testing.T) {
	pool := fixture()
	stats := Stats(pool)
	published := Filter(pool, domain.FilterCriteria{Published: bptr(true)})
	assert.Equal(t, len(published), stats.Published)
}
