package api

import (
	"net/http"

	"fitai/workout-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the exercise catalog as reference data.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListExercises returns every catalog entry.
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	entries, err := h.catalogService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to fetch exercise catalog")
		return
	}
	c.JSON(http.StatusOK, entries)
}
