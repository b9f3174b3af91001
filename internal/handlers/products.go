package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"rosegold_back_end/internal/catalog"
	"rosegold_back_end/internal/models"
)

// GET /api/products
// ?collection=women&category=Ring&category=Chain&style=Silver&max_price=5000&sort=price-low
func (h *Handler) ListProducts(c *gin.Context) {
	criteria := catalog.Criteria{
		Collection: strings.ToLower(c.Query("collection")),
		Categories: c.QueryArray("category"),
		Styles:     c.QueryArray("style"),
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := strconv.Atoi(raw)
		if err != nil || maxPrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a non-negative integer"})
			return
		}
		criteria.MaxPrice = &maxPrice
	}

	products := catalog.Query(h.Catalog.List(), criteria, catalog.ParseSortKey(c.Query("sort")))

	c.JSON(http.StatusOK, gin.H{
		"title":      criteria.Title(),
		"total":      len(products),
		"products":   h.views(c.Request.Context(), products),
		"categories": h.Catalog.Categories(),
		"styles":     h.Catalog.Styles(),
		"max_price":  catalog.DefaultMaxPrice,
	})
}

// GET /api/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	product, ok := h.Catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, h.view(c.Request.Context(), product))
}

// GET /api/products/search?q=
func (h *Handler) SearchProducts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	products, source := h.search(c, q)
	c.JSON(http.StatusOK, gin.H{
		"query":    q,
		"source":   source,
		"total":    len(products),
		"products": h.views(c.Request.Context(), products),
	})
}

// search prefers the index and falls back to the store when the index is
// missing or failing. Ids the store no longer knows are dropped.
func (h *Handler) search(c *gin.Context, q string) ([]models.Product, string) {
	if h.Search != nil {
		ids, err := h.Search.Search(c.Request.Context(), q)
		if err == nil {
			products := make([]models.Product, 0, len(ids))
			for _, id := range ids {
				if p, ok := h.Catalog.Get(id); ok {
					products = append(products, p)
				}
			}
			return products, "elasticsearch"
		}
		log.Printf("⚠️ Search index unavailable, using memory: %v", err)
	}
	return h.Catalog.Search(q), "memory"
}

// GET /api/collections/:collection
func (h *Handler) ListCollection(c *gin.Context) {
	collection := models.Collection(strings.ToLower(c.Param("collection")))
	if !collection.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown collection"})
		return
	}
	products := h.Catalog.ListByCollection(collection)
	c.JSON(http.StatusOK, gin.H{
		"collection": collection,
		"total":      len(products),
		"products":   h.views(c.Request.Context(), products),
	})
}

// GET /api/categories/:category
func (h *Handler) ListCategory(c *gin.Context) {
	category := c.Param("category")
	products := h.Catalog.ListByCategory(category)
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"total":    len(products),
		"products": h.views(c.Request.Context(), products),
	})
}
