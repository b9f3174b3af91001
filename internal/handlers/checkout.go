package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rosegold_back_end/internal/checkout"
	"rosegold_back_end/internal/models"
)

// GET /api/checkout/summary
func (h *Handler) CheckoutSummary(c *gin.Context) {
	items := h.Cart.Items()
	payload := gin.H{
		"items":  items,
		"count":  h.Cart.TotalItemCount(),
		"totals": checkout.OrderTotals(h.Cart.TotalPrice()),
	}
	if def, ok := h.Addresses.Default(); ok {
		payload["default_address"] = def
	}
	c.JSON(http.StatusOK, payload)
}

// POST /api/checkout/orders
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order request"})
		return
	}

	confirmation, err := checkout.PlaceOrder(h.Cart, h.Addresses, req)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrAddressRequired), errors.Is(err, checkout.ErrPaymentRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, confirmation)
	}
}
