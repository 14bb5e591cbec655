// Package mapping declares, per cadastral kind, which raw fields feed which
// canonical Property attributes. Pure lookup data: adding a new kind means
// adding one entry here and one record source adapter, nothing else.
package mapping

import "listing-service/internal/core/domain"

// Attr names a canonical Property attribute a raw field can be mapped to.
type Attr string

const (
	AttrTitle            Attr = "title"
	AttrShortDescription Attr = "shortDescription"
	AttrDescription      Attr = "description"
	AttrAddress          Attr = "address"
	AttrPrice            Attr = "price"
	AttrPricePerArea     Attr = "pricePerArea"
	AttrCurrency         Attr = "currency"
	AttrForSale          Attr = "forSale"
	AttrForRent          Attr = "forRent"
	AttrRentPrice        Attr = "rentPrice"
	AttrSurfaceArea      Attr = "surfaceArea"
	AttrBedrooms         Attr = "bedrooms"
	AttrBathrooms        Attr = "bathrooms"
	AttrKitchens         Attr = "kitchens"
	AttrLivingRooms      Attr = "livingRooms"
	AttrTotalFloors      Attr = "totalFloors"
	AttrTotalUnits       Attr = "totalUnits"
	AttrParkingSpaces    Attr = "parkingSpaces"
	AttrHasElevator      Attr = "hasElevator"
	AttrHasGenerator     Attr = "hasGenerator"
	AttrHasParking       Attr = "hasParking"
	AttrBuildable        Attr = "isLandForDevelopment"
	AttrApartmentsOK     Attr = "approvedForApartments"
	AttrPublished        Attr = "published"
	AttrFeatured         Attr = "featured"
	AttrCreatedAt        Attr = "createdAt"
	AttrUpdatedAt        Attr = "updatedAt"
)

// KindMapping describes one cadastral kind.
//
// Fields maps canonical attributes to raw field names; an attribute missing
// from the map means the kind has no such concept (an allotment has no
// bedrooms) and the normalizer leaves the null/false default.
type KindMapping struct {
	// IDField is the kind-local unique identifier field.
	IDField string

	// LandFamily kinds always normalize to TypeLand. Non-land kinds derive
	// their type from UsageField through the keyword table.
	LandFamily bool
	UsageField string

	// MediaSlots are the ordered image fields (at most domain.MaxMediaSlots).
	// VideoField is empty for kinds without video.
	MediaSlots []string
	VideoField string

	// LocationRefField holds the arrondissement foreign key carried forward
	// as an opaque locator and resolved in batch by the collection builder.
	LocationRefField string

	Fields map[Attr]string
}

// Table holds the declaration for every supported kind.
var Table = map[domain.Kind]KindMapping{
	domain.KindAllotment: {
		IDField:          "allotment_code",
		LandFamily:       true,
		MediaSlots:       []string{"image_1", "image_2", "image_3", "image_4", "image_5", "image_6"},
		VideoField:       "video_url",
		LocationRefField: "arrondissement_id",
		Fields: map[Attr]string{
			AttrTitle:            "label",
			AttrShortDescription: "summary",
			AttrDescription:      "details",
			AttrAddress:          "street_address",
			AttrPrice:            "unit_price",
			AttrPricePerArea:     "price_per_sqm",
			AttrCurrency:         "currency",
			AttrForSale:          "for_sale",
			AttrForRent:          "for_rent",
			AttrRentPrice:        "rent_price",
			AttrSurfaceArea:      "area_sqm",
			AttrBuildable:        "buildable",
			AttrApartmentsOK:     "apartments_approved",
			AttrPublished:        "published",
			AttrFeatured:         "featured",
			AttrCreatedAt:        "created_at",
			AttrUpdatedAt:        "updated_at",
		},
	},
	domain.KindParcel: {
		IDField:          "parcel_number",
		LandFamily:       true,
		MediaSlots:       []string{"image_1", "image_2", "image_3", "image_4", "image_5", "image_6"},
		LocationRefField: "arrondissement_id",
		Fields: map[Attr]string{
			AttrTitle:            "label",
			AttrShortDescription: "summary",
			AttrDescription:      "details",
			AttrAddress:          "street_address",
			AttrPrice:            "price",
			AttrPricePerArea:     "price_sqm",
			AttrCurrency:         "currency",
			AttrForSale:          "for_sale",
			AttrForRent:          "for_rent",
			AttrRentPrice:        "rent_price",
			AttrSurfaceArea:      "surface",
			AttrBuildable:        "buildable",
			AttrPublished:        "published",
			AttrFeatured:         "featured",
			AttrCreatedAt:        "created_at",
			AttrUpdatedAt:        "updated_at",
		},
	},
	domain.KindBuilding: {
		IDField:          "building_code",
		UsageField:       "usage_category",
		MediaSlots:       []string{"photo_1", "photo_2", "photo_3", "photo_4", "photo_5", "photo_6"},
		VideoField:       "video_url",
		LocationRefField: "arrondissement_id",
		Fields: map[Attr]string{
			AttrTitle:            "name",
			AttrShortDescription: "summary",
			AttrDescription:      "details",
			AttrAddress:          "street_address",
			AttrPrice:            "price",
			AttrPricePerArea:     "price_sqm",
			AttrCurrency:         "currency",
			AttrForSale:          "for_sale",
			AttrForRent:          "for_rent",
			AttrRentPrice:        "rent_price",
			AttrSurfaceArea:      "built_area",
			AttrBedrooms:         "bedrooms",
			AttrBathrooms:        "bathrooms",
			AttrKitchens:         "kitchens",
			AttrLivingRooms:      "living_rooms",
			AttrTotalFloors:      "floors_count",
			AttrTotalUnits:       "units_count",
			AttrParkingSpaces:    "parking_spaces",
			AttrHasElevator:      "has_elevator",
			AttrHasGenerator:     "has_generator",
			AttrHasParking:       "has_parking",
			AttrPublished:        "published",
			AttrFeatured:         "featured",
			AttrCreatedAt:        "created_at",
			AttrUpdatedAt:        "updated_at",
		},
	},
	domain.KindInfrastructure: {
		IDField:          "infra_code",
		UsageField:       "category",
		MediaSlots:       []string{"img_1", "img_2", "img_3", "img_4", "img_5", "img_6"},
		LocationRefField: "arrondissement_id",
		Fields: map[Attr]string{
			AttrTitle:            "name",
			AttrShortDescription: "summary",
			AttrDescription:      "details",
			AttrPrice:            "price",
			AttrCurrency:         "currency",
			AttrForSale:          "for_sale",
			AttrForRent:          "for_rent",
			AttrRentPrice:        "rent_price",
			AttrSurfaceArea:      "area_sqm",
			AttrParkingSpaces:    "parking_spaces",
			AttrHasGenerator:     "has_generator",
			AttrHasParking:       "has_parking",
			AttrPublished:        "published",
			AttrFeatured:         "featured",
			AttrCreatedAt:        "created_at",
			AttrUpdatedAt:        "updated_at",
		},
	},
}

// For returns the mapping for a kind. ok is false for unknown kinds.
func For(kind domain.Kind) (KindMapping, bool) {
	m, ok := Table[kind]
	return m, ok
}
