package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosuracademy/academy-api/internal/app/services"
	"github.com/hosuracademy/academy-api/internal/middleware"
)

// CatalogController serves the gallery and toppers. Both are read-only.
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetGallery lists gallery items
// @Summary List gallery items
// @Tags gallery
// @Produce json
// @Success 200 {array} models.GalleryItem
// @Router /gallery [get]
func (c *CatalogController) GetGallery(ctx *gin.Context) {
	items, err := c.catalogService.GetGallery(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetToppers lists toppers
// @Summary List toppers
// @Tags toppers
// @Produce json
// @Success 200 {array} models.Topper
// @Router /toppers [get]
func (c *CatalogController) GetToppers(ctx *gin.Context) {
	toppers, err := c.catalogService.GetToppers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toppers)
}
