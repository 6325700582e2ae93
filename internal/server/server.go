package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mantonx/streambase/internal/config"
	"github.com/mantonx/streambase/internal/database"
	"github.com/mantonx/streambase/internal/events"
	"github.com/mantonx/streambase/internal/logger"
	"github.com/mantonx/streambase/internal/middleware"
	"github.com/mantonx/streambase/internal/modules/modulemanager"
	"github.com/mantonx/streambase/internal/server/handlers"

	// Import all modules to trigger their registration
	_ "github.com/mantonx/streambase/internal/modules/analyticsmodule"
	_ "github.com/mantonx/streambase/internal/modules/catalogmodule"
)

var (
	systemEventBus    events.EventBus
	moduleInitialized bool
)

// SetupRouter configures and returns the main router
func SetupRouter() (*gin.Engine, error) {
	cfg := config.Get()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorLogger())

	if cfg.Server.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
		if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
			corsConfig.AllowAllOrigins = true
		} else {
			corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
		}
		r.Use(cors.New(corsConfig))
	}

	initializeEventBus()

	if err := initializeModules(); err != nil {
		return nil, err
	}

	r.GET("/api/health", handlers.Health)
	r.GET("/api/system/status", handlers.SystemStatus)

	modulemanager.RegisterRoutes(r)

	return r, nil
}

// initializeEventBus sets up the system-wide event bus
func initializeEventBus() {
	if systemEventBus != nil {
		return
	}
	systemEventBus = events.NewEventBus()
	events.SetGlobalEventBus(systemEventBus)
	logger.Info("System event bus initialized")
}

// initializeModules sets up the module system and loads all modules
func initializeModules() error {
	if moduleInitialized {
		return nil
	}

	db := database.GetDB()
	if err := modulemanager.LoadAll(db); err != nil {
		return err
	}

	moduleInitialized = true
	logModuleStatus()
	return nil
}

func logModuleStatus() {
	modules := modulemanager.ListModules()
	logger.Info("Module system initialized", logger.Int("modules", len(modules)))
	for _, m := range modules {
		logger.Info("Module loaded",
			logger.String("name", m.Name()),
			logger.String("id", m.ID()),
			logger.Bool("core", m.Core()))
	}
}

// GetEventBus returns the system event bus instance
func GetEventBus() events.EventBus {
	return systemEventBus
}

// ShutdownEventBus gracefully shuts down the event bus
func ShutdownEventBus() {
	if systemEventBus == nil {
		return
	}
	logger.Info("Shutting down event bus")
	systemEventBus.Stop()
	systemEventBus = nil
}

// Shutdown stops modules that hold background resources and then the event
// bus. Called from main during graceful shutdown.
func Shutdown() {
	type shutdowner interface {
		Shutdown()
	}

	for _, m := range modulemanager.ListModules() {
		if s, ok := m.(shutdowner); ok {
			s.Shutdown()
			logger.Debug("Module shut down", logger.String("module", m.ID()))
		}
	}

	ShutdownEventBus()
}
