package normalize

import (
	"strings"

	"listing-service/internal/core/domain"
)

// typeKeyword maps a usage/category substring to a property type. Checked in
// order, first hit wins. The table is bilingual because cadastral usage text
// arrives in both French and English.
type typeKeyword struct {
	substr string
	t      domain.PropertyType
}

var typeKeywords = []typeKeyword{
	{"appartement", domain.TypeApartment},
	{"apartment", domain.TypeApartment},
	{"studio", domain.TypeStudio},
	{"duplex", domain.TypeDuplex},
	{"villa", domain.TypeVilla},
	{"maison", domain.TypeHouse},
	{"house", domain.TypeHouse},
	{"residential", domain.TypeHouse},
	{"bureau", domain.TypeOffice},
	{"office", domain.TypeOffice},
	{"boutique", domain.TypeCommercial},
	{"commercial", domain.TypeCommercial},
	{"shop", domain.TypeCommercial},
	{"market", domain.TypeCommercial},
	{"terrain", domain.TypeLand},
	{"land", domain.TypeLand},
}

// deriveType is total and default-safe: unrecognized or empty usage text
// falls back to TypeBuilding.
func deriveType(usage string) domain.PropertyType {
	lowered := strings.ToLower(strings.TrimSpace(usage))
	if lowered == "" {
		return domain.TypeBuilding
	}
	for _, kw := range typeKeywords {
		if strings.Contains(lowered, kw.substr) {
			return kw.t
		}
	}
	return domain.TypeBuilding
}
