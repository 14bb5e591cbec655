// Package normalize turns kind-specific raw cadastral records into canonical
// Property values by applying the field mapping table.
package normalize

import (
	"fmt"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/mapping"
)

// Normalize converts one raw record of the given kind into a Property.
//
// It never fails: a field that cannot be coerced degrades to its null/false
// default, because one malformed field must not drop an otherwise valid
// listing. The raw record is never mutated.
func Normalize(raw domain.RawRecord, kind domain.Kind) domain.Property {
	m, ok := mapping.For(kind)
	if !ok {
		// Unknown kind: produce an inert, unpublished property rather than
		// failing the whole build.
		return domain.Property{SourceKind: kind, Type: domain.TypeBuilding}
	}

	rawID := coerceString(raw[m.IDField])
	if rawID == "" {
		// Fall back to a stable placeholder so the listing stays addressable.
		rawID = fmt.Sprintf("unidentified-%s", kind)
	}

	field := func(attr mapping.Attr) any {
		name, ok := m.Fields[attr]
		if !ok {
			return nil
		}
		return raw[name]
	}

	p := domain.Property{
		ID:         domain.CompositeID(kind, rawID),
		SourceKind: kind,
		RawID:      rawID,

		Title:            coerceString(field(mapping.AttrTitle)),
		ShortDescription: coerceString(field(mapping.AttrShortDescription)),
		Description:      coerceString(field(mapping.AttrDescription)),
		Address:          coerceString(field(mapping.AttrAddress)),
		LocationRef:      coerceString(raw[m.LocationRefField]),

		Price:        coerceFloatPtr(field(mapping.AttrPrice)),
		PricePerArea: coerceFloatPtr(field(mapping.AttrPricePerArea)),
		Currency:     coerceString(field(mapping.AttrCurrency)),
		ForSale:      coerceBool(field(mapping.AttrForSale)),
		ForRent:      coerceBool(field(mapping.AttrForRent)),
		RentPrice:    coerceFloatPtr(field(mapping.AttrRentPrice)),

		SurfaceArea:   coerceFloatPtr(field(mapping.AttrSurfaceArea)),
		Bedrooms:      coerceIntPtr(field(mapping.AttrBedrooms)),
		Bathrooms:     coerceIntPtr(field(mapping.AttrBathrooms)),
		Kitchens:      coerceIntPtr(field(mapping.AttrKitchens)),
		LivingRooms:   coerceIntPtr(field(mapping.AttrLivingRooms)),
		TotalFloors:   coerceIntPtr(field(mapping.AttrTotalFloors)),
		TotalUnits:    coerceIntPtr(field(mapping.AttrTotalUnits)),
		ParkingSpaces: coerceIntPtr(field(mapping.AttrParkingSpaces)),

		HasElevator:  coerceBool(field(mapping.AttrHasElevator)),
		HasGenerator: coerceBool(field(mapping.AttrHasGenerator)),
		HasParking:   coerceBool(field(mapping.AttrHasParking)),

		IsLandForDevelopment:  coerceBool(field(mapping.AttrBuildable)),
		ApprovedForApartments: coerceBool(field(mapping.AttrApartmentsOK)),

		Published: coerceBool(field(mapping.AttrPublished)),
		Featured:  coerceBool(field(mapping.AttrFeatured)),

		CreatedAt: coerceTime(field(mapping.AttrCreatedAt)),
		UpdatedAt: coerceTime(field(mapping.AttrUpdatedAt)),
	}

	if m.LandFamily {
		p.Type = domain.TypeLand
	} else {
		p.Type = deriveType(coerceString(raw[m.UsageField]))
	}

	p.Images = assembleImages(raw, m.MediaSlots)
	if m.VideoField != "" {
		if v := coerceString(raw[m.VideoField]); isMediaURL(v) {
			p.Video = &v
		}
	}

	return p
}

// assembleImages walks the mapped media slots in declared order and compacts
// the non-empty ones, preserving relative slot order.
func assembleImages(raw domain.RawRecord, slots []string) []string {
	images := make([]string, 0, len(slots))
	for _, slot := range slots {
		if len(images) == domain.MaxMediaSlots {
			break
		}
		if url := coerceString(raw[slot]); isMediaURL(url) {
			images = append(images, url)
		}
	}
	return images
}
