package main

import (
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jongan69/used-car-api/internal/config"
	"github.com/jongan69/used-car-api/internal/logger"
	"github.com/jongan69/used-car-api/internal/offerup"
	"github.com/jongan69/used-car-api/internal/router"
)

// init is called before the main function.
func init() {
	// Initialize structured logger (dev mode if GIN_MODE != release)
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev, os.Getenv("LOG_LEVEL"))

	// Configure the runtime
	ConfigureRuntime()
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	// Load the config
	var cfg *config.Config
	if c, err := config.LoadConfig(); err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	} else {
		cfg = c
	}

	// Check that all ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	// Load the location table from YAML
	places, err := config.LoadPlaces(cfg.EnvVars.PlacesFile)
	if err != nil {
		logger.Get().Fatal("failed to load location table", zap.Error(err))
	}
	cfg.Places = places

	// Marketplace scrape client shared by all handlers
	provider := offerup.NewClient(
		cfg.EnvVars.OfferUpBaseURL,
		time.Duration(cfg.EnvVars.OfferUpTimeoutSeconds)*time.Second,
		cfg.EnvVars.OfferUpRPS,
	)

	// Create a new gin router
	gin.SetMode(cfg.EnvVars.GinMode)
	r := router.SetupRouter(cfg, provider)

	// Run the server
	addr := cfg.EnvVars.Host + ":" + cfg.EnvVars.Port
	logger.Get().Info("starting server",
		zap.String("addr", addr),
		zap.Int("known_states", len(places.States)))
	r.Run(addr)
}

// ConfigureRuntime sets the number of operating system threads.
func ConfigureRuntime() {
	nuCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(nuCPU)
	logger.Get().Info("runtime configured", zap.Int("cpus", nuCPU))
}
