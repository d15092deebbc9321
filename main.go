package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/elgato/elgato-app/config"
	"github.com/elgato/elgato-app/events"
	"github.com/elgato/elgato-app/middlewares"
	"github.com/elgato/elgato-app/router"
	"github.com/elgato/elgato-app/services"
	"github.com/elgato/elgato-app/storage"
	"github.com/elgato/elgato-app/utils"
)

func main() {
	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := buildAdapter(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to set up storage: %v", err)
	}
	utils.InfoLogger.Printf("Storage driver: %s", cfg.StorageDriver)

	hub := events.NewHub()

	sessions, err := services.NewSessionService(store, cfg.AdminEmail, cfg.AdminPasswordHash)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load session state: %v", err)
	}
	carts, err := services.NewCartService(store, sessions)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load cart state: %v", err)
	}
	orders, err := services.NewOrderService(store, sessions, hub)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load order state: %v", err)
	}
	favorites, err := services.NewFavoriteService(store, hub)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load favorites: %v", err)
	}

	r := router.SetupRouter(router.App{
		Catalog:   services.NewCatalogService(),
		Carts:     carts,
		Orders:    orders,
		Sessions:  sessions,
		Favorites: favorites,
		Hub:       hub,
		BaseURL:   cfg.BaseURL,
	})

	// 50 requests per second per IP
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func buildAdapter(cfg *config.Config) (storage.Adapter, error) {
	switch cfg.StorageDriver {
	case "file":
		return storage.NewFileStore(cfg.DataDir)
	case "gorm":
		db, err := cfg.OpenDB()
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return storage.NewRedisStore(client), nil
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
