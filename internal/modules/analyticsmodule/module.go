package analyticsmodule

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mantonx/streambase/internal/database"
	"github.com/mantonx/streambase/internal/events"
	"github.com/mantonx/streambase/internal/logger"
	"github.com/mantonx/streambase/internal/modules/modulemanager"
)

// Auto-register the module when imported
func init() {
	Register()
}

const (
	// ModuleID is the unique identifier for the analytics module
	ModuleID = "system.analytics"

	// ModuleName is the display name for the analytics module
	ModuleName = "Analytics"
)

// Module implements view-count analytics as a module
type Module struct {
	db      *gorm.DB
	store   *Storage
	handler *Handler
	hub     *Hub
	subID   string
}

// Register registers the analytics module with the module system
func Register() {
	modulemanager.Register(&Module{})
}

// ID returns the unique module identifier
func (m *Module) ID() string {
	return ModuleID
}

// Name returns the module display name
func (m *Module) Name() string {
	return ModuleName
}

// Core returns whether this is a core module
func (m *Module) Core() bool {
	return false
}

// Migrate performs database migrations
func (m *Module) Migrate(db *gorm.DB) error {
	logger.Info("Migrating analytics database schema")
	return db.AutoMigrate(&database.AnalyticsEvent{})
}

// Init initializes the analytics module and connects the live feed to the
// event bus.
func (m *Module) Init() error {
	if m.db == nil {
		m.db = database.GetDB()
	}

	bus := events.GetGlobalEventBus()
	m.store = NewStorage(m.db)
	m.handler = NewHandler(m.store, bus)
	m.hub = NewHub()

	if bus != nil {
		m.subID = bus.Subscribe(m.hub.BroadcastEvent, events.EventAnalyticsRecorded)
	}
	return nil
}

// RegisterRoutes registers the analytics HTTP routes
func (m *Module) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/analytics")
	{
		group.GET("", m.handler.GetSummary)
		group.POST("", m.handler.RecordEvent)
		group.GET("/live", m.hub.HandleLive)
	}
}

// Shutdown disconnects live clients and detaches from the event bus
func (m *Module) Shutdown() {
	if bus := events.GetGlobalEventBus(); bus != nil && m.subID != "" {
		bus.Unsubscribe(m.subID)
	}
	if m.hub != nil {
		m.hub.Close()
	}
}
