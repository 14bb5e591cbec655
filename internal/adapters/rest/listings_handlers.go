package rest

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

const defaultSimilarLimit = 6

type ListingsHandler struct {
	findListingsUC       usecases_port.FindListingsUseCase
	getListingDetailsUC  usecases_port.GetListingDetailsUseCase
	getSimilarListingsUC usecases_port.GetSimilarListingsUseCase
	getListingStatsUC    usecases_port.GetListingStatsUseCase
}

func NewListingsHandler(findListingsUC usecases_port.FindListingsUseCase,
	getListingDetailsUC usecases_port.GetListingDetailsUseCase,
	getSimilarListingsUC usecases_port.GetSimilarListingsUseCase,
	getListingStatsUC usecases_port.GetListingStatsUseCase) *ListingsHandler {
	return &ListingsHandler{
		findListingsUC:       findListingsUC,
		getListingDetailsUC:  getListingDetailsUC,
		getSimilarListingsUC: getSimilarListingsUC,
		getListingStatsUC:    getListingStatsUC,
	}
}

// FindListings handles GET /api/v1/listings. Public contract: only
// published listings, source failures logged but never exposed.
func (h *ListingsHandler) FindListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	params, page, perPage, err := parseFindParams(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	published := true
	params.Criteria.Published = &published

	result, err := h.findListingsUC.Execute(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSortOption) {
			WriteJSONError(w, http.StatusBadRequest, "unsupported sort option")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "failed to query listings")
		return
	}

	logSourceErrors(logger, result.SourceErrors)

	RespondWithJSON(w, http.StatusOK, ListingsPageResponse{
		Items:      toListingCards(result.Listings),
		TotalCount: result.TotalCount,
		Page:       page,
		PerPage:    perPage,
	})
}

// FindListingsAdmin handles GET /api/v1/admin/listings: same query surface
// without the forced published predicate, with per-kind source errors in
// the envelope.
func (h *ListingsHandler) FindListingsAdmin(w http.ResponseWriter, r *http.Request) {
	params, page, perPage, err := parseFindParams(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Admin callers may still ask for published=true/false explicitly.
	published, err := parseBoolPtr(r.URL.Query(), "published")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	params.Criteria.Published = published

	result, err := h.findListingsUC.Execute(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSortOption) {
			WriteJSONError(w, http.StatusBadRequest, "unsupported sort option")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "failed to query listings")
		return
	}

	sourceErrors := make(map[string]string, len(result.SourceErrors))
	for kind, srcErr := range result.SourceErrors {
		sourceErrors[string(kind)] = srcErr.Error()
	}

	RespondWithJSON(w, http.StatusOK, AdminListingsPageResponse{
		ListingsPageResponse: ListingsPageResponse{
			Items:      toListingCards(result.Listings),
			TotalCount: result.TotalCount,
			Page:       page,
			PerPage:    perPage,
		},
		SourceErrors: sourceErrors,
	})
}

// GetListingDetails handles GET /api/v1/listings/{listingID}.
func (h *ListingsHandler) GetListingDetails(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingID")

	property, err := h.getListingDetailsUC.Execute(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "listing not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "failed to load listing")
		return
	}

	// Unpublished listings never appear on the public surface.
	if !property.Published {
		WriteJSONError(w, http.StatusNotFound, "listing not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingDetails(*property))
}

// GetSimilarListings handles GET /api/v1/listings/{listingID}/similar.
func (h *ListingsHandler) GetSimilarListings(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingID")

	limit := defaultSimilarLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteJSONError(w, http.StatusBadRequest, "parameter \"limit\" must be a positive integer")
			return
		}
		limit = parsed
	}

	similar, err := h.getSimilarListingsUC.Execute(r.Context(), listingID, limit)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "failed to compute recommendations")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingCards(similar))
}

// GetStats handles GET /api/v1/listings/stats.
func (h *ListingsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.getListingStatsUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	RespondWithJSON(w, http.StatusOK, StatsResponse{
		Published: stats.Published,
		ForSale:   stats.ForSale,
		ForRent:   stats.ForRent,
		Featured:  stats.Featured,
	})
}

// parseFindParams builds the query-engine parameters from the URL query.
func parseFindParams(query url.Values) (domain.FindListingsParams, int, int, error) {
	params := domain.FindListingsParams{
		Query: parseString(query, "q"),
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(query.Get("perPage"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	params.Limit = perPage
	params.Offset = (page - 1) * perPage

	if rawType := parseString(query, "type"); rawType != "" {
		t := domain.PropertyType(rawType)
		params.Criteria.Type = &t
	}

	var err error
	if params.Criteria.ForSale, err = parseBoolPtr(query, "forSale"); err != nil {
		return params, 0, 0, err
	}
	if params.Criteria.ForRent, err = parseBoolPtr(query, "forRent"); err != nil {
		return params, 0, 0, err
	}
	if params.Criteria.MinPrice, err = parseFloatPtr(query, "priceMin"); err != nil {
		return params, 0, 0, err
	}
	if params.Criteria.MaxPrice, err = parseFloatPtr(query, "priceMax"); err != nil {
		return params, 0, 0, err
	}
	if params.Criteria.MinBedrooms, err = parseIntPtr(query, "bedroomsMin"); err != nil {
		return params, 0, 0, err
	}
	if params.Criteria.HasParking, err = parseBoolPtr(query, "hasParking"); err != nil {
		return params, 0, 0, err
	}
	if params.Criteria.HasGenerator, err = parseBoolPtr(query, "hasGenerator"); err != nil {
		return params, 0, 0, err
	}

	params.Sort = domain.SortOption(parseString(query, "sort"))

	return params, page, perPage, nil
}

func logSourceErrors(logger port.LoggerPort, sourceErrors map[domain.Kind]error) {
	for kind, err := range sourceErrors {
		logger.Warn("Snapshot is partial, one record source failed", port.Fields{
			"kind":  string(kind),
			"error": err.Error(),
		})
	}
}
