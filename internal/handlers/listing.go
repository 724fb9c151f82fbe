// internal/handlers/listing.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/listing-discovery/internal/catalog"
	"github.com/javajoker/listing-discovery/internal/discovery"
	"github.com/javajoker/listing-discovery/internal/i18n"
	"github.com/javajoker/listing-discovery/internal/middleware"
	"github.com/javajoker/listing-discovery/internal/models"
	"github.com/javajoker/listing-discovery/internal/services"
	"github.com/javajoker/listing-discovery/internal/utils"
)

type ListingHandler struct {
	discoveryService *services.DiscoveryService
}

func NewListingHandler(discoveryService *services.DiscoveryService) *ListingHandler {
	return &ListingHandler{
		discoveryService: discoveryService,
	}
}

type SubmitSearchRequest struct {
	Query string `json:"q"`
}

// GET /listings
// Only the shareable parameters (q, category, location) are read.
func (h *ListingHandler) GetListings(c *gin.Context) {
	result := h.discoveryService.SearchQuery(c.Request.URL.RawQuery)
	h.respond(c, result)
}

// POST /listings/search
func (h *ListingHandler) SearchListings(c *gin.Context) {
	var state models.FilterState
	if err := c.ShouldBindJSON(&state); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := utils.ValidateStruct(&state); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	result := h.discoveryService.Search(state.Normalize())
	h.respond(c, result)
}

// POST /listings/clear
func (h *ListingHandler) ClearFilters(c *gin.Context) {
	result := h.discoveryService.Clear()
	h.respond(c, result)
}

// GET /listings/featured
func (h *ListingHandler) GetFeaturedListings(c *gin.Context) {
	listings := h.discoveryService.Featured()
	utils.ResultResponse(c, gin.H{"listings": listings}, len(listings), nil)
}

// GET /listings/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.discoveryService.Listing(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrListingNotFound) {
			utils.NotFoundResponse(c, i18n.KeyListingNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listing": listing,
	})
}

// GET /categories
func (h *ListingHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.discoveryService.Categories(),
	})
}

// GET /locations
func (h *ListingHandler) GetLocations(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"locations": h.discoveryService.Locations(),
	})
}

// GET /filters/initial
// The X-Location header seeds the location of a new view.
func (h *ListingHandler) GetInitialFilters(c *gin.Context) {
	state := h.discoveryService.InitialState(middleware.HeaderLocation(c))
	values := discovery.Encode(state)

	utils.SuccessResponse(c, gin.H{
		"state": state,
		"query": values.Encode(),
		"path":  discovery.ListingsPath(values),
	})
}

// POST /search/submit
func (h *ListingHandler) SubmitSearch(c *gin.Context) {
	var req SubmitSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	values := h.discoveryService.Submit(req.Query, middleware.HeaderLocation(c))
	utils.SuccessResponse(c, gin.H{
		"query": values.Encode(),
		"path":  discovery.ListingsPath(values),
	})
}

func (h *ListingHandler) respond(c *gin.Context, result services.SearchResult) {
	lang := utils.GetLangFromContext(c)

	meta := gin.H{
		"title":   headingTitle(lang, result.Heading),
		"summary": i18n.T(lang, i18n.KeyListingsFound, result.Count),
		"path":    discovery.ListingsPath(discovery.Encode(result.State)),
	}
	if result.Empty {
		meta["message"] = i18n.T(lang, i18n.KeyListingsEmpty)
	}

	utils.ResultResponse(c, result, result.Count, meta)
}

func headingTitle(lang string, h services.Heading) string {
	switch h.Kind {
	case services.HeadingQuery:
		return i18n.T(lang, i18n.KeyListingsResultsFor, h.Value)
	case services.HeadingCategory:
		return h.Value
	default:
		return i18n.T(lang, i18n.KeyListingsAll)
	}
}
