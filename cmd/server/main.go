package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/leadscope/lead-intel-api/internal/api"
	"github.com/leadscope/lead-intel-api/internal/catalog"
	"github.com/leadscope/lead-intel-api/internal/intel"
	"github.com/leadscope/lead-intel-api/internal/logger"
	"github.com/leadscope/lead-intel-api/internal/middleware"
	"github.com/leadscope/lead-intel-api/internal/services"
	"github.com/leadscope/lead-intel-api/pkg/config"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()
	appLog := logger.New()

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.GetTrustedProxies()); err != nil {
		appLog.Fatal("Failed to set trusted proxies", err)
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(appLog))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestSize))

	if cfg.EnableRateLimit {
		// 100 requests per minute per IP, small burst headroom
		limiter := middleware.NewIPRateLimiter(rate.Limit(100.0/60.0), 20)
		r.Use(limiter.RateLimit())
	}

	r.Use(gin.Recovery())

	// Wire the engine, catalog, and services
	engine := intel.NewEngineWithOptions(cfg.RecencyWindowDays, nil)
	cat := catalog.New()
	svcs := services.NewServices(cat, engine, appLog)

	// Setup API routes
	api.SetupRoutes(r, svcs)

	// Start server
	appLog.Info("Server starting on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("Failed to start server", err)
	}
}
