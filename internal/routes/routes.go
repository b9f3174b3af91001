package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rosegold_back_end/internal/handlers"
	"rosegold_back_end/internal/middleware"
)

type Options struct {
	AllowedOrigins []string
	AdminEmail     string
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, opts Options) {
	corsConfig := cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(opts.AllowedOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")

	// Catalog
	api.GET("/products", h.ListProducts)
	api.GET("/products/search", h.SearchProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/collections/:collection", h.ListCollection)
	api.GET("/categories/:category", h.ListCategory)

	// Cart
	api.GET("/cart", h.GetCart)
	api.DELETE("/cart", h.ClearCart)
	api.GET("/cart/ws", h.CartWebSocket)
	api.POST("/cart/items", h.AddCartItem)
	api.PUT("/cart/items/:id", h.UpdateCartItem)
	api.DELETE("/cart/items/:id", h.RemoveCartItem)

	// Wishlist
	api.GET("/wishlist", h.GetWishlist)
	api.POST("/wishlist/items", h.AddWishlistItem)
	api.POST("/wishlist/toggle", h.ToggleWishlistItem)
	api.GET("/wishlist/items/:id", h.WishlistContains)
	api.DELETE("/wishlist/items/:id", h.RemoveWishlistItem)

	// Session
	api.GET("/session", h.GetSession)

	gated := api.Group("", middleware.SessionGate(h.Identity))

	auth := gated.Group("/auth", middleware.Processing())
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)

	account := gated.Group("/account", middleware.AuthRequired(h.Identity))
	account.GET("/addresses", h.ListAddresses)
	account.POST("/addresses", h.CreateAddress)
	account.PUT("/addresses/:id", h.UpdateAddress)
	account.DELETE("/addresses/:id", h.DeleteAddress)
	account.POST("/addresses/:id/default", h.SetDefaultAddress)

	checkout := gated.Group("/checkout")
	checkout.GET("/summary", h.CheckoutSummary)
	checkout.POST("/orders", middleware.AuthRequired(h.Identity), h.PlaceOrder)

	admin := gated.Group("/admin", middleware.RequireAdmin(h.Identity, opts.AdminEmail))
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.POST("/products/:id/images", h.UploadProductImage)
}
