package main

import (
	"context" // context package is needed for Redis and seeding
	"log"     // log package is needed for logging
	"net/http"

	"metronest/internal/api"        // Custom package for API handlers
	"metronest/internal/config"     // Custom package for configuration
	"metronest/internal/domain"     // Custom package for domain models
	"metronest/internal/listing"    // Custom package for listing CRUD
	"metronest/internal/middleware" // Custom package for middleware
	"metronest/internal/search"     // Custom package for search
	"metronest/internal/store"      // Custom package for store backends

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database. Startup survives an unreachable DB: the
	// process runs on the in-memory fallback until MySQL comes back.
	var primary store.Source
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Warnf("failed to connect to DB, running on in-memory store: %v", err)
	} else {
		primary = store.NewGorm(db)
	}

	// Setup Redis client; an empty address disables caching entirely
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Warnf("failed to connect to Redis, caching disabled: %v", err)
			redisClient = nil
		}
	}

	// The fallback store ships with demo data so the API is usable
	// before any DB exists
	mem := store.NewMemory()
	if err := mem.Seed(context.Background()); err != nil {
		logrus.Fatalf("failed to seed fallback store: %v", err)
	}
	sel := store.NewSelector(primary, mem)

	searchSvc := search.NewService(sel)   // Search service
	listingSvc := listing.NewService(sel) // Listing CRUD service

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	apiGroup := r.Group("/api")

	// Liveness endpoint
	apiGroup.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": cfg.PingMessage})
	})

	// Auth routes
	apiGroup.POST("/auth/register", api.RegisterHandler(sel, cfg.JWTSecret)) // Registration endpoint
	apiGroup.POST("/auth/login", api.LoginHandler(sel, cfg.JWTSecret))      // Login endpoint

	// Search routes (public)
	apiGroup.GET("/search/cities", api.CitiesHandler())                                               // City autocomplete
	apiGroup.GET("/search/locations", api.LocationsHandler())                                         // Locality autocomplete
	apiGroup.GET("/search/rooms", api.SearchHandler(searchSvc, redisClient, domain.KindRoom))         // Room search
	apiGroup.GET("/search/flatmates", api.SearchHandler(searchSvc, redisClient, domain.KindFlatmate)) // Flatmate search
	apiGroup.GET("/search/pgs", api.SearchHandler(searchSvc, redisClient, domain.KindPG))             // PG search

	// Detail routes (public)
	apiGroup.GET("/rooms/:id", api.RoomDetailsHandler(sel))         // Room details
	apiGroup.GET("/flatmates/:id", api.FlatmateDetailsHandler(sel)) // Flatmate details
	apiGroup.GET("/pgs/:id", api.PGDetailsHandler(sel))             // PG details

	// Listing routes (protected by JWT)
	listingGroup := apiGroup.Group("/listings")
	listingGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	listingGroup.POST("/room", api.CreateRoomHandler(listingSvc, redisClient))         // Create room endpoint
	listingGroup.POST("/flatmate", api.CreateFlatmateHandler(listingSvc, redisClient)) // Create flatmate endpoint
	listingGroup.POST("/pg", api.CreatePGHandler(listingSvc, redisClient))             // Create PG endpoint
	listingGroup.GET("/mine", api.MyListingsHandler(listingSvc, redisClient))          // Owner dashboard endpoint
	listingGroup.PATCH("/:kind/:id", api.PatchListingHandler(listingSvc, redisClient)) // Partial update endpoint
	listingGroup.DELETE("/:kind/:id", api.DeleteListingHandler(listingSvc, redisClient))
	listingGroup.POST("/:kind/:id/toggle", api.ToggleActiveHandler(listingSvc, redisClient)) // Visibility toggle endpoint

	// Profile routes (protected by JWT)
	authGroup := apiGroup.Group("/auth")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authGroup.GET("/profile", api.ProfileHandler(sel)) // Own profile endpoint
	authGroup.GET("/users", api.ListUsersHandler(sel)) // List users endpoint (debugging aid)

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
