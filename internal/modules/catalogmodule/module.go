// Package catalogmodule provides the content catalog: movies, TV shows with
// their season/episode trees, and the upcoming-content section.
package catalogmodule

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mantonx/streambase/internal/database"
	"github.com/mantonx/streambase/internal/events"
	"github.com/mantonx/streambase/internal/logger"
	"github.com/mantonx/streambase/internal/modules/catalogmodule/api"
	"github.com/mantonx/streambase/internal/modules/catalogmodule/storage"
	"github.com/mantonx/streambase/internal/modules/modulemanager"
)

// Auto-register the module when imported
func init() {
	Register()
}

const (
	// ModuleID is the unique identifier for the catalog module
	ModuleID = "system.catalog"

	// ModuleName is the display name for the catalog module
	ModuleName = "Content Catalog"
)

// Module implements the catalog functionality as a module
type Module struct {
	db      *gorm.DB
	store   *storage.Storage
	handler *api.Handler
}

// Register registers the catalog module with the module system
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
	return true
}

// Migrate performs database migrations
func (m *Module) Migrate(db *gorm.DB) error {
	logger.Info("Migrating catalog database schema")
	return db.AutoMigrate(
		&database.User{},
		&database.Content{},
		&database.Season{},
		&database.Episode{},
		&database.UpcomingContent{},
	)
}

// Init initializes the catalog module
func (m *Module) Init() error {
	if m.db == nil {
		m.db = database.GetDB()
	}

	m.store = storage.NewStorage(m.db)
	m.handler = api.NewHandler(m.store, events.GetGlobalEventBus())
	return nil
}

// RegisterRoutes registers the catalog HTTP routes
func (m *Module) RegisterRoutes(router *gin.Engine) {
	api.RegisterRoutes(router, m.handler)
}

// Storage exposes the catalog storage for other modules and tests
func (m *Module) Storage() *storage.Storage {
	return m.store
}
