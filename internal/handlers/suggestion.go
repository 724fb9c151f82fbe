// internal/handlers/suggestion.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/listing-discovery/internal/discovery"
	"github.com/javajoker/listing-discovery/internal/models"
	"github.com/javajoker/listing-discovery/internal/services"
	"github.com/javajoker/listing-discovery/internal/utils"
)

type SuggestionHandler struct {
	discoveryService *services.DiscoveryService
}

func NewSuggestionHandler(discoveryService *services.DiscoveryService) *SuggestionHandler {
	return &SuggestionHandler{
		discoveryService: discoveryService,
	}
}

// SuggestionTarget is a selectable row: categories first, then listings,
// in display order.
type SuggestionTarget struct {
	discovery.Target
	Path string `json:"path"`
}

type SuggestionsResponse struct {
	Query      string             `json:"query"`
	Open       bool               `json:"open"`
	Categories []models.Category  `json:"categories"`
	Listings   []models.Listing   `json:"listings"`
	Targets    []SuggestionTarget `json:"targets"`
}

func newSuggestionsResponse(query string, open bool, s discovery.Suggestions) SuggestionsResponse {
	targets := make([]SuggestionTarget, 0, len(s.Categories)+len(s.Listings))
	for _, t := range s.Targets() {
		targets = append(targets, SuggestionTarget{Target: t, Path: t.Path()})
	}
	return SuggestionsResponse{
		Query:      query,
		Open:       open,
		Categories: s.Categories,
		Listings:   s.Listings,
		Targets:    targets,
	}
}

// GET /suggestions?q=
func (h *SuggestionHandler) GetSuggestions(c *gin.Context) {
	query := c.Query("q")
	suggestions := h.discoveryService.Suggest(query)

	utils.SuccessResponse(c, newSuggestionsResponse(query, !suggestions.Empty(), suggestions))
}
