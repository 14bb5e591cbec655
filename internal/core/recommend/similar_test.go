package recommend

import (
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func target() domain.Property {
	return domain.Property{
		ID:       "building:target",
		Type:     domain.TypeVilla,
		Location: "Cotonou, Littoral, Littoral",
		Price:    fptr(100_000_000),
	}
}

func TestSimilar_TypeOutranksLocationAndPrice(t *testing.T) {
	pool := []domain.Property{
		// Location + comparable price, wrong type: score 3.
		{ID: "a", Type: domain.TypeStudio, Location: "Cotonou, Littoral, Littoral", Price: fptr(95_000_000)},
		// Type only: score 4, must outrank everything above.
		{ID: "b", Type: domain.TypeVilla, Location: "Porto-Novo, Ouémé, Ouémé", Price: fptr(500_000_000)},
		// Type + location + price: score 7.
		{ID: "c", Type: domain.TypeVilla, Location: "Cotonou, Littoral, Littoral", Price: fptr(110_000_000)},
	}

	similar := Similar(target(), pool, 10)
	require.Len(t, similar, 3)
	assert.Equal(t, "c", similar[0].ID)
	assert.Equal(t, "b", similar[1].ID)
	assert.Equal(t, "a", similar[2].ID)
}

func TestSimilar_NeverPadsBelowRelevanceBar(t *testing.T) {
	pool := []domain.Property{
		{ID: "match-1", Type: domain.TypeVilla},
		{ID: "match-2", Type: domain.TypeVilla},
		// Price proximity alone is below the bar.
		{ID: "price-only", Type: domain.TypeStudio, Price: fptr(100_000_000)},
		{ID: "nothing", Type: domain.TypeOffice},
	}

	similar := Similar(target(), pool, 6)
	require.Len(t, similar, 2, "two relevant candidates must not be padded to the limit")
	assert.Equal(t, "match-1", similar[0].ID)
	assert.Equal(t, "match-2", similar[1].ID)
}

func TestSimilar_ExcludesTarget(t *testing.T) {
	tgt := target()
	pool := []domain.Property{tgt, {ID: "other", Type: domain.TypeVilla}}

	similar := Similar(tgt, pool, 10)
	require.Len(t, similar, 1)
	assert.Equal(t, "other", similar[0].ID)
}

func TestSimilar_LimitCapsResult(t *testing.T) {
	pool := []domain.Property{
		{ID: "1", Type: domain.TypeVilla},
		{ID: "2", Type: domain.TypeVilla},
		{ID: "3", Type: domain.TypeVilla},
	}
	assert.Len(t, Similar(target(), pool, 2), 2)
	assert.Empty(t, Similar(target(), pool, 0))
	assert.Empty(t, Similar(target(), pool, -1))
}

func TestSimilar_TiesKeepPoolOrder(t *testing.T) {
	pool := []domain.Property{
		{ID: "first", Type: domain.TypeVilla},
		{ID: "second", Type: domain.TypeVilla},
		{ID: "third", Type: domain.TypeVilla},
	}
	similar := Similar(target(), pool, 10)
	require.Len(t, similar, 3)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{similar[0].ID, similar[1].ID, similar[2].ID})
}

func TestSimilar_UnlocatedTargetScoresNoLocationPoints(t *testing.T) {
	tgt := target()
	tgt.Location = ""
	pool := []domain.Property{
		// Both unlocated: without the guard this would count as a
		// location match and clear the bar on its own.
		{ID: "also-unlocated", Type: domain.TypeStudio, Location: ""},
	}
	assert.Empty(t, Similar(tgt, pool, 10))
}

func TestPriceComparable_Band(t *testing.T) {
	assert.True(t, priceComparable(fptr(100), fptr(70)))
	assert.True(t, priceComparable(fptr(100), fptr(130)))
	assert.False(t, priceComparable(fptr(100), fptr(69)))
	assert.False(t, priceComparable(fptr(100), fptr(131)))
	assert.False(t, priceComparable(nil, fptr(100)))
	assert.False(t, priceComparable(fptr(100), nil))
}
