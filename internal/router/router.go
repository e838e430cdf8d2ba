package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"print4me/internal/config"
	"print4me/internal/handler"
	"print4me/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	orderH *handler.OrderHandler,
	pageH *handler.PageHandler,
	healthH *handler.HealthHandler,
	metricsH http.Handler,
) *gin.Engine {
	r := gin.New()
	// Larger parts spill to temp files instead of memory.
	r.MaxMultipartMemory = 8 << 20

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger("/health", "/metrics"))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/", healthH.Root)
	r.GET("/health", healthH.Health)
	if metricsH != nil {
		r.GET("/metrics", gin.WrapH(metricsH))
	}

	api := r.Group("/api")
	api.Use(middleware.BodyLimit(cfg.Upload.MaxRequestBytes()))
	api.POST("/print-request", orderH.Submit)
	api.POST("/count-one", pageH.CountOne)
	api.POST("/count-pages", pageH.CountMany)
	api.POST("/quote", orderH.Quote)

	return r
}
