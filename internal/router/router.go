package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jongan69/used-car-api/internal/config"
	"github.com/jongan69/used-car-api/internal/handlers"
	"github.com/jongan69/used-car-api/internal/logger"
	"github.com/jongan69/used-car-api/internal/metrics"
	"github.com/jongan69/used-car-api/internal/middleware"
	"github.com/jongan69/used-car-api/internal/offerup"
	"github.com/jongan69/used-car-api/internal/service"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config, provider offerup.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.EnvVars.CORSOrigins) == 1 && cfg.EnvVars.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.EnvVars.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// Request correlation, structured request log, Prometheus counters
	r.Use(logger.RequestIDMiddleware())
	r.Use(middleware.RequestLogger("/metrics"))
	r.Use(metrics.Middleware())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Service setup
	locationService := service.NewLocationService(cfg.Places)
	carService := service.NewCarService(cfg, provider, locationService)

	carHandler := handlers.NewCarHandler(carService)
	locationHandler := handlers.NewLocationHandler(locationService)
	healthHandler := handlers.NewHealthHandler(cfg)

	// Service banner and Prometheus exposition stay outside the API prefix
	r.GET("/", healthHandler.Root)
	r.GET("/metrics", metrics.Handler())

	api := r.Group(cfg.EnvVars.APIPrefix, middleware.RateLimitByIP(cfg.EnvVars.RateLimitPerMinute, 5*time.Minute, time.Hour))
	{
		api.GET("/health", healthHandler.Health)

		// Car search and detail routes

		// Search with a JSON body
		api.POST("/cars/search", carHandler.SearchCars)
		// Search with query parameters
		api.GET("/cars/search", carHandler.SearchCarsQuery)
		// Fetch one listing by id
		api.GET("/cars/:listing_id", carHandler.GetCarDetails)

		// Location table routes

		// List all known states
		api.GET("/locations/states", locationHandler.GetStates)
		// List the known cities of a state
		api.GET("/locations/cities", locationHandler.GetCities)
		// Look up the coordinates of a city
		api.GET("/locations/coordinates", locationHandler.GetCoordinates)
	}

	return r
}
