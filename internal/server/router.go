package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/XiaoConstantine/checklist-go/pkg/config"
	"github.com/XiaoConstantine/checklist-go/pkg/core"
	"github.com/XiaoConstantine/checklist-go/pkg/logging"
)

// NewRouter wires the HTTP routes.
func NewRouter(cfg *config.Config, registry core.ToolRegistry, logger *logging.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))

	if len(cfg.Server.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", "X-Requested-With", requestIDHeader},
		}))
	}

	h := NewHandler(registry, cfg.Server.VerificationToken)

	router.GET("/mcp", h.Tools)
	router.POST("/mcp", h.Invoke)
	router.GET("/health", h.Health)
	router.GET("/.well-known/openai-api", h.Verify)

	return router
}
