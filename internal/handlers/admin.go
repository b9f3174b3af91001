package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rosegold_back_end/internal/models"
)

const maxImageSize = 10 << 20

// POST /api/admin/products
func (h *Handler) CreateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product", "details": err.Error()})
		return
	}
	if draft.Collection == "" {
		draft.Collection = models.CollectionWomen
	}
	if !draft.Collection.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection"})
		return
	}
	draft.InStock = draft.StockCount > 0
	draft.IsOnSale = draft.OriginalPrice != nil && *draft.OriginalPrice > draft.Price
	draft.Images = nonEmpty(draft.Images)

	product := h.Catalog.Create(draft)
	log.Printf("✅ Product created: #%d %s", product.ID, product.Name)
	c.JSON(http.StatusCreated, h.view(c.Request.Context(), product))
}

// PUT /api/admin/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product", "details": err.Error()})
		return
	}
	if patch.Price != nil && *patch.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	if patch.StockCount != nil {
		if *patch.StockCount < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stockCount must not be negative"})
			return
		}
		inStock := *patch.StockCount > 0
		patch.InStock = &inStock
	}
	if patch.Collection != nil && !patch.Collection.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection"})
		return
	}
	if patch.Images != nil {
		images := nonEmpty(*patch.Images)
		patch.Images = &images
	}

	product, ok := h.Catalog.Update(id, patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	log.Printf("✏️ Product updated: #%d", id)
	c.JSON(http.StatusOK, h.view(c.Request.Context(), product))
}

// DELETE /api/admin/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	if !h.Catalog.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	log.Printf("🗑️ Product deleted: #%d", id)
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// POST /api/admin/products/:id/images (multipart field "file")
func (h *Handler) UploadProductImage(c *gin.Context) {
	if h.Images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}
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

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file received"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be an image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot read upload"})
		return
	}
	defer file.Close()

	key, err := h.Images.Upload(c.Request.Context(), id, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		log.Printf("❌ Image upload: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
		return
	}

	images := append(append([]string{}, product.Images...), key)
	patch := models.ProductPatch{Images: &images}
	if product.Image == "" {
		patch.Image = &key
	}
	updated, ok := h.Catalog.Update(id, patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key, "product": h.view(c.Request.Context(), updated)})
}

func nonEmpty(values []string) []string {
	out := []string{}
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
