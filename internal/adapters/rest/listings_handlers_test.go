package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFindListingsUC struct {
	gotParams domain.FindListingsParams
	page      *domain.ListingsPage
	err       error
}

func (f *fakeFindListingsUC) Execute(ctx context.Context, params domain.FindListingsParams) (*domain.ListingsPage, error) {
	f.gotParams = params
	return f.page, f.err
}

type fakeDetailsUC struct {
	property *domain.Property
	err      error
}

func (f *fakeDetailsUC) Execute(ctx context.Context, listingID string) (*domain.Property, error) {
	return f.property, f.err
}

type fakeSimilarUC struct {
	gotLimit int
	similar  []domain.Property
	err      error
}

func (f *fakeSimilarUC) Execute(ctx context.Context, listingID string, limit int) ([]domain.Property, error) {
	f.gotLimit = limit
	return f.similar, f.err
}

type fakeStatsUC struct {
	stats domain.ListingStats
	err   error
}

func (f *fakeStatsUC) Execute(ctx context.Context) (domain.ListingStats, error) {
	return f.stats, f.err
}

func emptyPage() *domain.ListingsPage {
	return &domain.ListingsPage{Listings: []domain.Property{}}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestFindListings_ForcesPublished(t *testing.T) {
	findUC := &fakeFindListingsUC{page: emptyPage()}
	h := NewListingsHandler(findUC, &fakeDetailsUC{}, &fakeSimilarUC{}, &fakeStatsUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?q=villa", nil)
	rec := httptest.NewRecorder()
	h.FindListings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, findUC.gotParams.Criteria.Published)
	assert.True(t, *findUC.gotParams.Criteria.Published)
	assert.Equal(t, "villa", findUC.gotParams.Query)
}

func TestFindListings_MalformedFilterIs400(t *testing.T) {
	h := NewListingsHandler(&fakeFindListingsUC{page: emptyPage()}, &fakeDetailsUC{}, &fakeSimilarUC{}, &fakeStatsUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?priceMin=cheap", nil)
	rec := httptest.NewRecorder()
	h.FindListings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "priceMin")
}

func TestFindListings_InvalidSortIs400(t *testing.T) {
	h := NewListingsHandler(&fakeFindListingsUC{err: domain.ErrInvalidSortOption}, &fakeDetailsUC{}, &fakeSimilarUC{}, &fakeStatsUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?sort=alphabetical", nil)
	rec := httptest.NewRecorder()
	h.FindListings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported sort option")
}

func TestFindListingsAdmin_PublishedStaysOptional(t *testing.T) {
	findUC := &fakeFindListingsUC{page: &domain.ListingsPage{
		Listings: []domain.Property{},
		SourceErrors: map[domain.Kind]error{
			domain.KindParcel: assert.AnError,
		},
	}}
	h := NewListingsHandler(findUC, &fakeDetailsUC{}, &fakeSimilarUC{}, &fakeStatsUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/listings", nil)
	rec := httptest.NewRecorder()
	h.FindListingsAdmin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, findUC.gotParams.Criteria.Published)

	var body AdminListingsPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.SourceErrors, "parcel")
}

func TestGetListingDetails_NotFound(t *testing.T) {
	h := NewListingsHandler(&fakeFindListingsUC{}, &fakeDetailsUC{err: domain.ErrListingNotFound}, &fakeSimilarUC{}, &fakeStatsUC{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/listings/building:404", nil), "listingID", "building:404")
	rec := httptest.NewRecorder()
	h.GetListingDetails(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetListingDetails_UnpublishedIs404(t *testing.T) {
	h := NewListingsHandler(&fakeFindListingsUC{},
		&fakeDetailsUC{property: &domain.Property{ID: "building:1", Published: false}},
		&fakeSimilarUC{}, &fakeStatsUC{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/listings/building:1", nil), "listingID", "building:1")
	rec := httptest.NewRecorder()
	h.GetListingDetails(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code, "unpublished listings never leak through the public surface")
}

func TestGetListingDetails_OK(t *testing.T) {
	price := 42_000_000.0
	h := NewListingsHandler(&fakeFindListingsUC{},
		&fakeDetailsUC{property: &domain.Property{
			ID: "building:1", Title: "Immeuble", Published: true,
			Price: &price, Currency: "XOF",
		}},
		&fakeSimilarUC{}, &fakeStatsUC{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/listings/building:1", nil), "listingID", "building:1")
	rec := httptest.NewRecorder()
	h.GetListingDetails(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body ListingDetailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "building:1", body.ID)
	assert.Contains(t, body.DisplayPrice, "XOF")
}

func TestGetSimilarListings_LimitDefaultsAndValidation(t *testing.T) {
	similarUC := &fakeSimilarUC{similar: []domain.Property{}}
	h := NewListingsHandler(&fakeFindListingsUC{}, &fakeDetailsUC{}, similarUC, &fakeStatsUC{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/listings/building:1/similar", nil), "listingID", "building:1")
	rec := httptest.NewRecorder()
	h.GetSimilarListings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultSimilarLimit, similarUC.gotLimit)

	req = withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/listings/building:1/similar?limit=0", nil), "listingID", "building:1")
	rec = httptest.NewRecorder()
	h.GetSimilarListings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStats(t *testing.T) {
	h := NewListingsHandler(&fakeFindListingsUC{}, &fakeDetailsUC{}, &fakeSimilarUC{},
		&fakeStatsUC{stats: domain.ListingStats{Published: 12, ForSale: 7, ForRent: 4, Featured: 2}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/stats", nil)
	rec := httptest.NewRecorder()
	h.GetStats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 12, body.Published)
	assert.Equal(t, 7, body.ForSale)
}

func TestParseFindParams_PageWindow(t *testing.T) {
	params, page, perPage, err := parseFindParams(url.Values{
		"page":    []string{"3"},
		"perPage": []string{"10"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, perPage)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 20, params.Offset)
}

func TestParseFindParams_Defaults(t *testing.T) {
	params, page, perPage, err := parseFindParams(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, perPage)
	assert.Equal(t, 0, params.Offset)
	assert.Nil(t, params.Criteria.ForSale)
	assert.Nil(t, params.Criteria.MinPrice)
}

func TestParseFindParams_PerPageClamped(t *testing.T) {
	_, _, perPage, err := parseFindParams(url.Values{"perPage": []string{"500"}})
	require.NoError(t, err)
	assert.Equal(t, 20, perPage)
}

func TestParseFindParams_Criteria(t *testing.T) {
	params, _, _, err := parseFindParams(url.Values{
		"type":        []string{"Villa"},
		"forSale":     []string{"true"},
		"priceMin":    []string{"1000000"},
		"bedroomsMin": []string{"3"},
		"sort":        []string{"price-asc"},
	})
	require.NoError(t, err)

	require.NotNil(t, params.Criteria.Type)
	assert.Equal(t, domain.TypeVilla, *params.Criteria.Type)
	require.NotNil(t, params.Criteria.ForSale)
	assert.True(t, *params.Criteria.ForSale)
	require.NotNil(t, params.Criteria.MinPrice)
	assert.Equal(t, float64(1_000_000), *params.Criteria.MinPrice)
	require.NotNil(t, params.Criteria.MinBedrooms)
	assert.Equal(t, 3, *params.Criteria.MinBedrooms)
	assert.Equal(t, domain.SortPriceAsc, params.Sort)
}
