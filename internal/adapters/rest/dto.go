package rest

import (
	"time"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/format"
)

// ListingCardResponse is the DTO for one listing in a result list.
type ListingCardResponse struct {
	ID               string   `json:"id"`
	SourceKind       string   `json:"source_kind"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Type             string   `json:"type"`
	Location         string   `json:"location"`
	Price            *float64 `json:"price"`
	DisplayPrice     string   `json:"display_price"`
	Currency         string   `json:"currency"`
	ForSale          bool     `json:"for_sale"`
	ForRent          bool     `json:"for_rent"`
	RentPrice        *float64 `json:"rent_price"`
	SurfaceArea      *float64 `json:"surface_area"`
	DisplayArea      string   `json:"display_area"`
	Bedrooms         *int     `json:"bedrooms"`
	Images           []string `json:"images"`
	Featured         bool     `json:"featured"`
}

// ListingDetailsResponse is the full canonical view of one listing.
type ListingDetailsResponse struct {
	ID               string   `json:"id"`
	SourceKind       string   `json:"source_kind"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
	Location         string   `json:"location"`
	Address          string   `json:"address"`

	Price               *float64 `json:"price"`
	DisplayPrice        string   `json:"display_price"`
	PricePerArea        *float64 `json:"price_per_area"`
	DisplayPricePerArea string   `json:"display_price_per_area"`
	Currency            string   `json:"currency"`
	ForSale             bool     `json:"for_sale"`
	ForRent             bool     `json:"for_rent"`
	RentPrice           *float64 `json:"rent_price"`

	SurfaceArea   *float64 `json:"surface_area"`
	DisplayArea   string   `json:"display_area"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	Kitchens      *int     `json:"kitchens"`
	LivingRooms   *int     `json:"living_rooms"`
	TotalFloors   *int     `json:"total_floors"`
	TotalUnits    *int     `json:"total_units"`
	ParkingSpaces *int     `json:"parking_spaces"`

	HasElevator  bool `json:"has_elevator"`
	HasGenerator bool `json:"has_generator"`
	HasParking   bool `json:"has_parking"`

	IsLandForDevelopment  bool `json:"is_land_for_development"`
	ApprovedForApartments bool `json:"approved_for_apartments"`

	Images []string `json:"images"`
	Video  *string  `json:"video"`

	Published bool `json:"published"`
	Featured  bool `json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListingsPageResponse struct {
	Items      []ListingCardResponse `json:"items"`
	TotalCount int                   `json:"total_count"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"per_page"`
}

// AdminListingsPageResponse additionally reports which kinds failed to
// fetch behind the current snapshot.
type AdminListingsPageResponse struct {
	ListingsPageResponse
	SourceErrors map[string]string `json:"source_errors"`
}

type StatsResponse struct {
	Published int `json:"published"`
	ForSale   int `json:"for_sale"`
	ForRent   int `json:"for_rent"`
	Featured  int `json:"featured"`
}

func toListingCard(p domain.Property) ListingCardResponse {
	return ListingCardResponse{
		ID:               p.ID,
		SourceKind:       string(p.SourceKind),
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Type:             string(p.Type),
		Location:         p.Location,
		Price:            p.Price,
		DisplayPrice:     format.Price(p.Price, p.Currency),
		Currency:         p.Currency,
		ForSale:          p.ForSale,
		ForRent:          p.ForRent,
		RentPrice:        p.RentPrice,
		SurfaceArea:      p.SurfaceArea,
		DisplayArea:      format.Area(p.SurfaceArea),
		Bedrooms:         p.Bedrooms,
		Images:           p.Images,
		Featured:         p.Featured,
	}
}

func toListingCards(properties []domain.Property) []ListingCardResponse {
	cards := make([]ListingCardResponse, len(properties))
	for i, p := range properties {
		cards[i] = toListingCard(p)
	}
	return cards
}

func toListingDetails(p domain.Property) ListingDetailsResponse {
	return ListingDetailsResponse{
		ID:               p.ID,
		SourceKind:       string(p.SourceKind),
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Type:             string(p.Type),
		Location:         p.Location,
		Address:          p.Address,

		Price:               p.Price,
		DisplayPrice:        format.Price(p.Price, p.Currency),
		PricePerArea:        p.PricePerArea,
		DisplayPricePerArea: format.PricePerArea(p.PricePerArea, p.Currency),
		Currency:            p.Currency,
		ForSale:             p.ForSale,
		ForRent:             p.ForRent,
		RentPrice:           p.RentPrice,

		SurfaceArea:   p.SurfaceArea,
		DisplayArea:   format.Area(p.SurfaceArea),
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Kitchens:      p.Kitchens,
		LivingRooms:   p.LivingRooms,
		TotalFloors:   p.TotalFloors,
		TotalUnits:    p.TotalUnits,
		ParkingSpaces: p.ParkingSpaces,

		HasElevator:  p.HasElevator,
		HasGenerator: p.HasGenerator,
		HasParking:   p.HasParking,

		IsLandForDevelopment:  p.IsLandForDevelopment,
		ApprovedForApartments: p.ApprovedForApartments,

		Images: p.Images,
		Video:  p.Video,

		Published: p.Published,
		Featured:  p.Featured,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
