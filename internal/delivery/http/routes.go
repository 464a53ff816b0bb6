package http

import (
	"github.com/gin-gonic/gin"

	"github.com/internmatch/backend/config"
)

// SetupRouter creates and configures the Gin router. uploadsDir, when
// non-empty, is served statically under /uploads (local file store only).
func SetupRouter(cfg *config.Config, handler *Handler, tokens TokenValidator, uploadsDir string) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)

	if uploadsDir != "" {
		router.Static("/uploads", uploadsDir)
	}

	router.POST("/auth/signin", handler.SignIn)
	router.POST("/seed/internships", handler.SeedInternships)
	router.POST("/match/top", handler.MatchTop)

	// Authenticated routes
	students := router.Group("/students")
	students.Use(AuthMiddleware(tokens))
	{
		students.GET("/me", handler.Me)
	}

	return router
}
