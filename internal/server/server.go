package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/luqihan/charityevents/config"
	"github.com/luqihan/charityevents/internal/handlers"
	"github.com/luqihan/charityevents/internal/middleware"
)

// Start opens the database, seeds it and serves the API until the
// process exits. The database handle is closed on the way out.
func Start() error {
	cfg := config.Load()

	db, err := config.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := config.Seed(db); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	r := New(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Info().Str("port", port).Msg("charity events API startup complete")
	return r.Run(":" + port)
}

// New builds the router with all middleware and routes against the
// given database handle.
func New(db *gorm.DB) *gin.Engine {
	r := gin.New()

	// Client IPs are never processed, so no proxy headers are trusted.
	r.ForwardedByClientIP = false
	_ = r.SetTrustedProxies([]string{})

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, _ io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Logger()
		})))

	// The front-end is served as static pages from anywhere, so CORS
	// defaults to allow-all unless origins are pinned explicitly.
	if allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		r.Use(cors.New(cors.Config{
			AllowOrigins: strings.Fields(allowOrigins),
			AllowMethods: []string{"OPTIONS", "GET"},
			AllowHeaders: []string{"Origin", "Content-Length", "Content-Type"},
		}))
	} else {
		r.Use(cors.Default())
	}

	r.Use(middleware.Database(db))

	setupRoutes(r)

	return r
}

func setupRoutes(r *gin.Engine) {
	r.GET("/", getRoot)

	api := r.Group("/api")
	{
		api.GET("/categories", handlers.ListCategories)

		events := api.Group("/events")
		{
			events.GET("/home", handlers.ListEvents)
			events.GET("/search", handlers.SearchEvents)
			events.GET("/:id", handlers.GetEvent)
		}
	}
}

// getRoot lists the available endpoints.
func getRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Charity Events API is running!",
		"endpoints": gin.H{
			"home":         "/api/events/home",
			"search":       "/api/events/search",
			"categories":   "/api/categories",
			"eventDetails": "/api/events/:id",
		},
	})
}
