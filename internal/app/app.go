// Package app configures and runs application.
package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/rf-toolkit/linkbudget/config"
	"github.com/rf-toolkit/linkbudget/internal/audit"
	"github.com/rf-toolkit/linkbudget/internal/controller/httpapi"
	"github.com/rf-toolkit/linkbudget/internal/repository/sessionfs"
	"github.com/rf-toolkit/linkbudget/internal/usecase"
	"github.com/rf-toolkit/linkbudget/internal/usecase/sessions"
	"github.com/rf-toolkit/linkbudget/pkg/httpserver"
	"github.com/rf-toolkit/linkbudget/pkg/logger"
)

var Version = "DEVELOPMENT"

// Init validates the parts of the configuration that must hold before the
// server starts: the session directory has to exist and be writable.
func Init(cfg *config.Config) error {
	if _, err := sessionfs.NewFileStore(cfg.Session.Dir); err != nil {
		return fmt.Errorf("app - Init - session dir %q: %w", cfg.Session.Dir, err)
	}

	return nil
}

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Level)
	cfg.Version = Version
	log.Info("app - Run - version: %s", cfg.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	// Repository
	fileStore, err := sessionfs.NewFileStore(cfg.Session.Dir)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - sessionfs.NewFileStore: %w", err))
	}

	var store sessions.Store = fileStore
	if cfg.Session.CacheTTL > 0 {
		store = sessionfs.NewCachedStore(fileStore, cfg.Session.CacheTTL)
	}

	// Audit log
	auditLog, err := audit.New(cfg.Audit.File)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - audit.New: %w", err))
	}

	defer auditLog.Close()

	// Use case
	usecases := usecase.NewUseCases(store, cfg.Session.Expiry, log)

	handler := setupHTTPHandler(cfg, log, usecases, auditLog)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.Host, cfg.Port),
		httpserver.TLS(cfg.TLS.Enabled, cfg.TLS.CertFile, cfg.TLS.KeyFile),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)
	shutdownServer(log, httpServer)
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecases *usecase.Usecases, auditLog *audit.Logger) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.AllowedHeaders

	handler.Use(cors.New(defaultConfig))
	httpapi.NewRouter(handler, log, *usecases, auditLog, cfg)

	// Optionally enable pprof endpoints (e.g., for staging) via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}

func shutdownServer(log logger.Interface, httpServer *httpserver.Server) {
	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
