package query

import "listing-service/internal/core/domain"

// Stats counts published listings and, among those, the for-sale, for-rent
// and featured ones. Single pass over the input.
func Stats(properties []domain.Property) domain.ListingStats {
	var s domain.ListingStats
	for _, p := range properties {
		if !p.Published {
			continue
		}
		s.Published++
		if p.ForSale {
			s.ForSale++
		}
		if p.ForRent {
			s.ForRent++
		}
		if p.Featured {
			s.Featured++
		}
	}
	return s
}
