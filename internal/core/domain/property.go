package domain

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies which cadastral record shape a Property was normalized from.
type Kind string

const (
	KindAllotment      Kind = "allotment"
	KindParcel         Kind = "parcel"
	KindBuilding       Kind = "building"
	KindInfrastructure Kind = "infrastructure"
)

// AllKinds lists the supported kinds in merge order. The unified collection
// concatenates kinds in this order so builds stay deterministic.
var AllKinds = []Kind{KindAllotment, KindParcel, KindBuilding, KindInfrastructure}

// RawRecord is one flat row fetched from a kind's backing store.
// Field names differ per kind; the mapping table knows which is which.
// Adapters own a RawRecord for the duration of one fetch, the normalizer
// never mutates it.
type RawRecord map[string]any

// PropertyType is the closed set of marketplace listing types.
type PropertyType string

const (
	TypeApartment  PropertyType = "Apartment"
	TypeHouse      PropertyType = "House"
	TypeVilla      PropertyType = "Villa"
	TypeOffice     PropertyType = "Office"
	TypeCommercial PropertyType = "Commercial"
	TypeLand       PropertyType = "Land"
	TypeBuilding   PropertyType = "Building"
	TypeStudio     PropertyType = "Studio"
	TypeDuplex     PropertyType = "Duplex"
)

// MaxMediaSlots is the number of ordered image fields a raw record may carry.
const MaxMediaSlots = 6

// Property is the canonical, normalized listing consumed by search, filters,
// statistics and recommendations. It is synthesized fresh on every collection
// build and never persisted; the raw record stays the system of record.
type Property struct {
	ID         string
	SourceKind Kind
	RawID      string

	Title            string
	ShortDescription string
	Description      string
	Type             PropertyType

	// Location is the resolved "Arrondissement, Department, Region" chain.
	// LocationRef is the opaque locator carried forward by the normalizer;
	// the collection builder batch-resolves it.
	Location    string
	LocationRef string
	Address     string

	Price        *float64
	PricePerArea *float64
	Currency     string
	ForSale      bool
	ForRent      bool
	RentPrice    *float64

	SurfaceArea   *float64
	Bedrooms      *int
	Bathrooms     *int
	Kitchens      *int
	LivingRooms   *int
	TotalFloors   *int
	TotalUnits    *int
	ParkingSpaces *int

	HasElevator  bool
	HasGenerator bool
	HasParking   bool

	// Land-family only.
	IsLandForDevelopment  bool
	ApprovedForApartments bool

	Images []string
	Video  *string

	Published bool
	Featured  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompositeID builds the globally unique listing id. Raw identifiers are
// only unique within a kind, so the kind is part of the identity.
func CompositeID(kind Kind, rawID string) string {
	return fmt.Sprintf("%s:%s", kind, rawID)
}

// SplitID is the inverse of CompositeID. ok is false when the id does not
// carry a kind prefix.
func SplitID(id string) (kind Kind, rawID string, ok bool) {
	k, raw, found := strings.Cut(id, ":")
	if !found || k == "" || raw == "" {
		return "", "", false
	}
	return Kind(k), raw, true
}

// Collection is the result of one unified build: every normalized property
// from the kinds that fetched successfully, plus the per-kind failures.
type Collection struct {
	Properties   []Property
	SourceErrors map[Kind]error
}
