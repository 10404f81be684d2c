// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	ginprometheus "github.com/zsais/go-gin-prometheus"

	"github.com/rf-toolkit/linkbudget/config"
	"github.com/rf-toolkit/linkbudget/internal/audit"
	v1 "github.com/rf-toolkit/linkbudget/internal/controller/httpapi/v1"
	"github.com/rf-toolkit/linkbudget/internal/usecase"
	"github.com/rf-toolkit/linkbudget/pkg/logger"
)

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, t usecase.Usecases, aud *audit.Logger, cfg *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// Add Prometheus middleware for automatic HTTP metrics
	// Don't automatically register /metrics endpoint - we have our own
	p := ginprometheus.NewPrometheus("gin")
	p.MetricsPath = ""
	// Use middleware function directly without calling Use() which would register conflicting routes
	handler.Use(p.HandlerFunc())

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// version info
	handler.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.Version})
	})

	// Routers
	api := handler.Group("/api/v1")

	v1.NewLinkBudgetRoutes(handler, api, t.LinkBudget, t.Sessions, aud, l, cfg.Session.CookieName)
}
