package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rosegold_back_end/internal/models"
)

type wishlistRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
}

func wishlistPayload(items []models.WishlistItem) gin.H {
	return gin.H{"items": items, "count": len(items)}
}

// GET /api/wishlist
func (h *Handler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, wishlistPayload(h.Wishlist.Items()))
}

// POST /api/wishlist/items
func (h *Handler) AddWishlistItem(c *gin.Context) {
	product, ok := h.bindWishlistProduct(c)
	if !ok {
		return
	}
	h.Wishlist.Add(models.WishlistItemFromProduct(product))
	c.JSON(http.StatusOK, wishlistPayload(h.Wishlist.Items()))
}

// POST /api/wishlist/toggle
func (h *Handler) ToggleWishlistItem(c *gin.Context) {
	product, ok := h.bindWishlistProduct(c)
	if !ok {
		return
	}
	saved := h.Wishlist.Toggle(models.WishlistItemFromProduct(product))
	payload := wishlistPayload(h.Wishlist.Items())
	payload["saved"] = saved
	c.JSON(http.StatusOK, payload)
}

// GET /api/wishlist/items/:id
func (h *Handler) WishlistContains(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "saved": h.Wishlist.Contains(id)})
}

// DELETE /api/wishlist/items/:id
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	h.Wishlist.Remove(id)
	c.JSON(http.StatusOK, wishlistPayload(h.Wishlist.Items()))
}

func (h *Handler) bindWishlistProduct(c *gin.Context) (models.Product, bool) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return models.Product{}, false
	}
	product, ok := h.Catalog.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return models.Product{}, false
	}
	return product, true
}
