package domain

// FilterCriteria is a sparse filter configuration. Every non-nil field adds
// one AND predicate; nil fields impose no constraint.
type FilterCriteria struct {
	Published    *bool
	Type         *PropertyType
	ForSale      *bool
	ForRent      *bool
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int
	HasParking   *bool
	HasGenerator *bool
}

// SortOption names one of the supported orderings.
type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortOldest       SortOption = "oldest"
	SortPriceAsc     SortOption = "price-asc"
	SortPriceDesc    SortOption = "price-desc"
	SortBedroomsDesc SortOption = "bedrooms-desc"
)

// ListingStats are the four marketplace counters, all taken over the
// published subset.
type ListingStats struct {
	Published int
	ForSale   int
	ForRent   int
	Featured  int
}

// FindListingsParams is the full query surface: search narrows, filter
// narrows further, sort reorders, then the page window applies.
type FindListingsParams struct {
	Query    string
	Criteria FilterCriteria
	Sort     SortOption
	Limit    int
	Offset   int
}

// ListingsPage is one page of query results. TotalCount is the match count
// before the page window. SourceErrors reports the per-kind fetch failures
// behind the snapshot; only admin surfaces expose them.
type ListingsPage struct {
	Listings     []Property
	TotalCount   int
	SourceErrors map[Kind]error
}
