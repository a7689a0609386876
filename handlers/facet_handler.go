package handlers

import (
	"net/http"

	"references-archive/services"

	"github.com/gin-gonic/gin"
)

type FacetHandler struct {
	facetService services.FacetService
}

func NewFacetHandler(facetService services.FacetService) *FacetHandler {
	return &FacetHandler{facetService: facetService}
}

// GetFacets returns the derived value sets that populate the filter controls.
// Recomputed from the current store contents on every request.
func (h *FacetHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"datasets":      h.facetService.UniqueDatasets(),
		"years":         h.facetService.UniqueYears(),
		"message_types": h.facetService.MessageTypeOptions(),
	})
}
