package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rosegold_back_end/internal/models"
)

// GET /api/account/addresses
func (h *Handler) ListAddresses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"addresses": h.Addresses.List()})
}

// POST /api/account/addresses
func (h *Handler) CreateAddress(c *gin.Context) {
	var draft models.AddressDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address", "details": err.Error()})
		return
	}
	created := h.Addresses.Add(draft)
	log.Printf("🏠 Address #%d added for %s", created.ID, c.GetString("user_id"))
	c.JSON(http.StatusCreated, created)
}

// PUT /api/account/addresses/:id
func (h *Handler) UpdateAddress(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
		return
	}
	var patch models.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address", "details": err.Error()})
		return
	}
	updated, ok := h.Addresses.Update(id, patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/account/addresses/:id
func (h *Handler) DeleteAddress(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
		return
	}
	if !h.Addresses.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": h.Addresses.List()})
}

// POST /api/account/addresses/:id/default
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
		return
	}
	if !h.Addresses.SetDefault(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": h.Addresses.List()})
}
