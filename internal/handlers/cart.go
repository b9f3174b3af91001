package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rosegold_back_end/internal/checkout"
	"rosegold_back_end/internal/models"
)

const cartPingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{
	// Origins are already filtered by the CORS layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type addCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required,gt=0"`
	Size      string `json:"size"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func cartPayload(items []models.CartItem) gin.H {
	subtotal := 0
	count := 0
	for _, item := range items {
		subtotal += item.LineTotal()
		count += item.Quantity
	}
	return gin.H{
		"items":  items,
		"count":  count,
		"totals": checkout.CartTotals(subtotal),
	}
}

// GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartPayload(h.Cart.Items()))
}

// POST /api/cart/items
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}
	product, ok := h.Catalog.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if !product.InStock {
		c.JSON(http.StatusConflict, gin.H{"error": "product is out of stock"})
		return
	}

	h.Cart.Add(models.CartItemFromProduct(product, req.Size))
	c.JSON(http.StatusOK, cartPayload(h.Cart.Items()))
}

// PUT /api/cart/items/:id
func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	h.Cart.SetQuantity(id, req.Quantity)
	c.JSON(http.StatusOK, cartPayload(h.Cart.Items()))
}

// DELETE /api/cart/items/:id
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	h.Cart.Remove(id)
	c.JSON(http.StatusOK, cartPayload(h.Cart.Items()))
}

// DELETE /api/cart
func (h *Handler) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, cartPayload(h.Cart.Items()))
}

// GET /api/cart/ws streams the cart after every change, starting with the
// current contents.
func (h *Handler) CartWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	// Notifications only mark the cart dirty; lines are read at send time.
	dirty := make(chan struct{}, 1)
	unsubscribe := h.Cart.Subscribe(func([]models.CartItem) {
		select {
		case dirty <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	// The reader only exists to notice the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	send := func(kind string, items []models.CartItem) error {
		msg := cartPayload(items)
		msg["type"] = kind
		return conn.WriteJSON(msg)
	}
	if err := send("cart_snapshot", h.Cart.Items()); err != nil {
		return
	}

	ping := time.NewTicker(cartPingInterval)
	defer ping.Stop()
	for {
		select {
		case <-dirty:
			if err := send("cart_updated", h.Cart.Items()); err != nil {
				log.Printf("❌ WebSocket send: %v", err)
				return
			}
		case <-ping.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
