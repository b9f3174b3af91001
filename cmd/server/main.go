package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rosegold_back_end/internal/address"
	"rosegold_back_end/internal/cache"
	"rosegold_back_end/internal/cart"
	"rosegold_back_end/internal/catalog"
	"rosegold_back_end/internal/config"
	"rosegold_back_end/internal/database"
	"rosegold_back_end/internal/handlers"
	"rosegold_back_end/internal/identity"
	"rosegold_back_end/internal/identity/local"
	"rosegold_back_end/internal/routes"
	"rosegold_back_end/internal/services"
	"rosegold_back_end/internal/wishlist"
)

func main() {
	config.Load()
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	conns, err := database.Connect(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("❌ Backing services: %v", err)
	}
	defer conns.Close()

	seed, err := catalog.SeedProducts()
	if err != nil {
		log.Fatalf("❌ Catalog seed: %v", err)
	}
	products := catalog.NewStore(seed)
	log.Printf("✅ Catalog loaded: %d products", len(seed))

	deps := handlers.Deps{
		Catalog:   products,
		Cart:      cart.NewStore(),
		Wishlist:  wishlist.NewStore(),
		Addresses: address.NewBook(address.SampleAddresses()),
	}

	if conns.Elastic != nil {
		index := services.NewProductIndex(conns.Elastic, cfg.Elastic.Index)
		syncCtx, syncCancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := index.Sync(syncCtx, products.List()); err != nil {
			log.Printf("⚠️ Initial index sync failed: %v", err)
		}
		syncCancel()
		stopIndex := index.Follow(products)
		defer stopIndex()
		deps.Search = index
	}
	if conns.MinIO != nil {
		deps.Images = services.NewImageSigner(conns.MinIO, cfg.MinIO.Bucket, cfg.MinIO.URLTTL)
	}

	var directory local.Directory = local.NewMemoryDirectory()
	if conns.Scylla != nil {
		directory = database.NewScyllaUserDirectory(conns.Scylla)
	}
	var tokens local.TokenStore = local.NewMemoryTokenStore()
	if conns.Redis != nil {
		tokens = cache.NewRedisTokenStore(conns.Redis)
	}
	provider := local.New(directory, tokens, local.Options{
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.SessionTTL,
	})

	session := identity.NewManager(provider)
	session.Start()
	defer session.Close()
	deps.Identity = session

	r := gin.Default()
	routes.RegisterRoutes(r, handlers.New(deps), routes.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AdminEmail:     cfg.AdminEmail,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Println("🚀 Storefront listening on port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Shutdown: %v", err)
	}
}
