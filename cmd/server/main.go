package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"datafeed/internal/config"
	"datafeed/internal/handler"
	"datafeed/internal/repository"
	"datafeed/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Property Slideshow Datafeed")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	// Initialize services
	assembler := service.NewAssembler(
		repo.SaleByReference,
		repo.RentalByReference,
		time.Duration(cfg.Slideshow.LookupTimeoutMillis)*time.Millisecond,
		cfg.Slideshow.LargeImageDir,
		cfg.Slideshow.DisplayImageDir,
	)
	slideshowService := service.NewSlideshowService(assembler, repo.LogBuild)
	propertyService := service.NewPropertyService(repo, cfg.Images.Root)

	log.Println("✅ Services initialized")
	log.Printf("   - Lookup timeout: %dms", cfg.Slideshow.LookupTimeoutMillis)
	log.Printf("   - Image rewrite: %s -> %s", cfg.Slideshow.LargeImageDir, cfg.Slideshow.DisplayImageDir)
	log.Printf("   - Image root: %s", cfg.Images.Root)

	// Initialize handlers
	slideshowHandler := handler.NewSlideshowHandler(slideshowService)
	propertyHandler := handler.NewPropertyHandler(propertyService, cfg.Properties.DefaultLimit, cfg.Properties.MaxLimit)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "property-slideshow-datafeed",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Slideshow build endpoint
		apiV1.POST("/slideshow/build", slideshowHandler.Build)

		// Property endpoints
		apiV1.GET("/properties", propertyHandler.List)
		apiV1.GET("/properties/:id", propertyHandler.Get)
		apiV1.GET("/properties/:id/images", propertyHandler.Images)
	}

	// Serve property photos from the filesystem
	router.Static("/images", cfg.Images.Root)

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)
	log.Printf("🌐 Slideshow UI: http://localhost:%d", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
