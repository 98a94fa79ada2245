package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wattshop/backend/internal/domain"
	"github.com/wattshop/backend/internal/usecase"
)

// Upper bounds used when a range request omits its max parameter. Wide
// enough for any real catalog entry.
const (
	maxQueryablePrice   = 1e12
	maxQueryableWattage = 1 << 30
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	engine *usecase.QueryEngine
	reload func() domain.CatalogMetadata
}

// NewHandler creates a new HTTP handler. reload rebuilds the catalog index
// and returns the metadata of the fresh snapshot; pass nil to disable the
// admin reload endpoint.
func NewHandler(engine *usecase.QueryEngine, reload func() domain.CatalogMetadata) *Handler {
	return &Handler{engine: engine, reload: reload}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "wattshop-backend",
		"version": "1.0.0",
	})
}

// ListProducts returns the catalog in ingestion order, narrowed by the
// optional filter query parameters and capped at limit.
func (h *Handler) ListProducts(c *gin.Context) {
	limit := usecase.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	filter := &domain.ProductFilter{Category: c.Query("category")}
	filter.MinPrice = floatParam(c, "min_price")
	filter.MaxPrice = floatParam(c, "max_price")
	filter.MinWattage = intParam(c, "min_wattage")
	filter.MaxWattage = intParam(c, "max_wattage")

	c.JSON(http.StatusOK, h.engine.List(limit, filter))
}

// GetProduct returns one product by its exact id
func (h *Handler) GetProduct(c *gin.Context) {
	product := h.engine.GetByID(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrProductNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// SearchProducts returns products matching the q parameter as a
// case-insensitive substring of name, description or category
func (h *Handler) SearchProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Search(c.Query("q")))
}

// ListCategories returns the distinct category names in ascending order
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Categories())
}

// ProductsByCategory returns products in the named category, matched
// case-insensitively
func (h *Handler) ProductsByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.ByCategory(c.Param("category")))
}

// ProductsByPriceRange returns products priced within the inclusive
// [min, max] bounds. Unparseable bounds are treated as absent.
func (h *Handler) ProductsByPriceRange(c *gin.Context) {
	min := 0.0
	if v := floatParam(c, "min"); v != nil {
		min = *v
	}
	max := maxQueryablePrice
	if v := floatParam(c, "max"); v != nil {
		max = *v
	}
	c.JSON(http.StatusOK, h.engine.ByPriceRange(min, max))
}

// ProductsByWattageRange returns products whose wattage lies within the
// inclusive [min, max] bounds
func (h *Handler) ProductsByWattageRange(c *gin.Context) {
	min := 0
	if v := intParam(c, "min"); v != nil {
		min = *v
	}
	max := maxQueryableWattage
	if v := intParam(c, "max"); v != nil {
		max = *v
	}
	c.JSON(http.StatusOK, h.engine.ByWattageRange(min, max))
}

// CatalogMetadata returns the data set description: origin, timestamp,
// product count and the live category list
func (h *Handler) CatalogMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Metadata())
}

// ReloadCatalog rebuilds the whole index from the loader and swaps it in
func (h *Handler) ReloadCatalog(c *gin.Context) {
	if h.reload == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "reload not configured"})
		return
	}
	meta := h.reload()
	c.JSON(http.StatusOK, gin.H{"status": "reloaded", "metadata": meta})
}

func floatParam(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func intParam(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &parsed
}
