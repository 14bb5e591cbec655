package query

import "listing-service/internal/core/domain"

// Filter applies every present criterion as an AND predicate. Absent (nil)
// criteria impose no constraint. Price bounds only apply to priced listings:
// a nil price never satisfies a bound.
func Filter(properties []domain.Property, criteria domain.FilterCriteria) []domain.Property {
	matched := make([]domain.Property, 0, len(properties))
	for _, p := range properties {
		if matches(p, criteria) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matches(p domain.Property, c domain.FilterCriteria) bool {
	if c.Published != nil && p.Published != *c.Published {
		return false
	}
	if c.Type != nil && p.Type != *c.Type {
		return false
	}
	if c.ForSale != nil && p.ForSale != *c.ForSale {
		return false
	}
	if c.ForRent != nil && p.ForRent != *c.ForRent {
		return false
	}
	if c.MinPrice != nil && (p.Price == nil || *p.Price < *c.MinPrice) {
		return false
	}
	if c.MaxPrice != nil && (p.Price == nil || *p.Price > *c.MaxPrice) {
		return false
	}
	if c.MinBedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms < *c.MinBedrooms) {
		return false
	}
	if c.HasParking != nil && p.HasParking != *c.HasParking {
		return false
	}
	if c.HasGenerator != nil && p.HasGenerator != *c.HasGenerator {
		return false
	}
	return true
}
