package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/suellenlima/energy-netload-monitor/internal/config"
	"github.com/suellenlima/energy-netload-monitor/internal/handler"
	"github.com/suellenlima/energy-netload-monitor/internal/middleware"
)

// Handlers groups the route handlers wired in main. Data handlers may be nil
// when the process starts without a usable store; only the health probes are
// mounted then, so operators can still see why the service is degraded.
type Handlers struct {
	Health   *handler.HealthHandler
	Analysis *handler.AnalysisHandler
	Capacity *handler.CapacityHandler
	Audit    *handler.AuditHandler
	Plant    *handler.PlantHandler
	Admin    *handler.AdminHandler
}

// SetupRouter builds the gin engine with all middleware and routes.
func SetupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/", h.Health.GetRoot)
	r.GET("/health", h.Health.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if h.Analysis == nil {
		return r
	}

	api := r.Group("/api/v1")
	{
		analysis := api.Group("/analysis")
		{
			analysis.GET("/hidden-load", h.Analysis.GetHiddenLoad)
			analysis.GET("/capacity", h.Analysis.GetCapacity)
			analysis.GET("/consumption-classes", h.Capacity.GetConsumptionClasses)
			analysis.GET("/fraud-alert", h.Audit.GetFraudAlert)
		}

		api.GET("/utilities", h.Capacity.GetUtilities)

		plants := api.Group("/plants")
		{
			plants.GET("/geo", h.Plant.GetPlantsGeoJSON)
			plants.GET("/near", h.Plant.GetPlantsNear)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireJWT(cfg.JWTSecret))
		{
			admin.POST("/seed-demo", h.Admin.SeedDemo)
		}
	}

	return r
}
