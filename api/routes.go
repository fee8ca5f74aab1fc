package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/nzwalks-api/api/health"
	"github.com/killallgit/nzwalks-api/api/regions"
	"github.com/killallgit/nzwalks-api/api/types"
	"github.com/killallgit/nzwalks-api/api/version"
	_ "github.com/killallgit/nzwalks-api/docs/swagger"
	"github.com/killallgit/nzwalks-api/pkg/config"
	apperrors "github.com/killallgit/nzwalks-api/pkg/errors"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limits config.RateLimitConfig, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil || deps.RegionRepository == nil {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "region repository is not configured")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	regionsGroup := engine.Group("/api/regions")
	if limits.Enabled {
		regionsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, limits.RPS, limits.Burst))
	}
	regions.RegisterRoutes(regionsGroup, deps)

	return nil
}

// NotFoundHandler handles requests for unknown endpoints
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  types.StatusError,
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
