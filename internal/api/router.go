package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tenant-site-server/internal/config"
	"github.com/tenant-site-server/internal/service"
)

// NewRouter creates and configures the Gin router. Fixed platform routes
// (health, the dashboard preview API) are registered normally; everything
// else falls through to the tenant site handler, which dispatches on the
// inbound hostname and path shape.
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	siteHandler := NewSiteHandler(services, cfg, log)
	previewHandler := NewPreviewHandler(services, log)

	// Health check
	router.GET("/health", healthCheck(services))

	// Dashboard preview API
	site := router.Group("/api/site")
	{
		site.GET("/:id", previewHandler.Home)
		site.GET("/:id/blog", previewHandler.BlogIndex)
		site.GET("/:id/blog/:slug", previewHandler.BlogPost)
		site.GET("/:id/posts", previewHandler.ListPosts)
	}

	// Tenant site serving is host-based, so it cannot be expressed as a
	// path route; the catch-all owns every path not claimed above
	router.NoRoute(siteHandler.Serve)

	return router
}

// healthCheck returns the health status. The project count doubles as a
// liveness probe of the store.
func healthCheck(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := services.Site.ProjectCount(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "degraded",
				"timestamp": time.Now().Format(time.RFC3339),
				"service":   "tenant-site-server",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "tenant-site-server",
			"projects":  count,
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("host", c.Request.Host).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS for the dashboard preview API
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
