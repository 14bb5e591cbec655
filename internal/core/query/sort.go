package query

import (
	"sort"

	"listing-service/internal/core/domain"
)

// Sort returns a stably sorted copy of the collection. Null prices sort
// after every real price regardless of direction, so unpriced listings
// always end up at the tail; the same holds for null/zero bedrooms under
// bedrooms-desc. An unsupported option is a caller bug and is rejected
// with domain.ErrInvalidSortOption.
func Sort(properties []domain.Property, option domain.SortOption) ([]domain.Property, error) {
	var less func(a, b domain.Property) bool

	switch option {
	case domain.SortNewest:
		less = func(a, b domain.Property) bool { return a.CreatedAt.After(b.CreatedAt) }
	case domain.SortOldest:
		less = func(a, b domain.Property) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case domain.SortPriceAsc:
		less = func(a, b domain.Property) bool { return comparePrice(a.Price, b.Price, true) }
	case domain.SortPriceDesc:
		less = func(a, b domain.Property) bool { return comparePrice(a.Price, b.Price, false) }
	case domain.SortBedroomsDesc:
		less = lessBedroomsDesc
	default:
		return nil, domain.ErrInvalidSortOption
	}

	sorted := make([]domain.Property, len(properties))
	copy(sorted, properties)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted, nil
}

// comparePrice orders two nullable prices; nil is greater than any real
// price in both directions.
func comparePrice(a, b *float64, ascending bool) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if ascending {
		return *a < *b
	}
	return *a > *b
}

func lessBedroomsDesc(a, b domain.Property) bool {
	av, bv := 0, 0
	if a.Bedrooms != nil {
		av = *a.Bedrooms
	}
	if b.Bedrooms != nil {
		bv = *b.Bedrooms
	}
	return av > bv
}
