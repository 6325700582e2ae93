// Package modulemanager provides the module registry. Modules self-register
// from their init() functions and are migrated, initialized, and wired into
// the router in registration order.
package modulemanager

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mantonx/streambase/internal/logger"
)

// Module defines the interface that all modules must implement
type Module interface {
	ID() string                // Unique identifier for the module
	Name() string              // Display name for the module
	Core() bool                // Whether this is a core module (cannot be disabled)
	Migrate(db *gorm.DB) error // Run database migrations
	Init() error               // Initialize the module
}

// RouteRegistrar is an optional interface for modules that register routes
type RouteRegistrar interface {
	RegisterRoutes(router *gin.Engine)
}

// ModuleRegistry manages module registration and initialization
type ModuleRegistry struct {
	modules     map[string]Module
	mu          sync.RWMutex
	initialized bool
}

// Registry is the global module registry
var Registry = &ModuleRegistry{
	modules: make(map[string]Module),
}

// Register adds a module to the global registry
func Register(m Module) {
	Registry.Register(m)
}

// Register adds a module to the registry
func (r *ModuleRegistry) Register(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		logger.Warn("Module registered after initialization",
			logger.String("module", m.ID()))
	}

	r.modules[m.ID()] = m
	logger.Info("Module registered",
		logger.String("module", m.Name()),
		logger.String("id", m.ID()))
}

// LoadAll migrates and initializes all registered modules
func LoadAll(db *gorm.DB) error {
	return Registry.LoadAll(db)
}

// LoadAll migrates and initializes all registered modules
func (r *ModuleRegistry) LoadAll(db *gorm.DB) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		logger.Warn("Module system already initialized")
		return nil
	}

	for _, m := range r.ordered() {
		if err := m.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate module %s: %w", m.ID(), err)
		}
	}

	for _, m := range r.ordered() {
		if err := m.Init(); err != nil {
			return fmt.Errorf("failed to initialize module %s: %w", m.ID(), err)
		}
		logger.Info("Module initialized", logger.String("module", m.Name()))
	}

	r.initialized = true
	return nil
}

// RegisterRoutes wires every route-registering module into the router
func RegisterRoutes(router *gin.Engine) {
	Registry.RegisterRoutes(router)
}

// RegisterRoutes wires every route-registering module into the router
func (r *ModuleRegistry) RegisterRoutes(router *gin.Engine) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.ordered() {
		if registrar, ok := m.(RouteRegistrar); ok {
			registrar.RegisterRoutes(router)
			logger.Debug("Module routes registered", logger.String("module", m.ID()))
		}
	}
}

// ListModules returns all registered modules sorted by ID
func ListModules() []Module {
	return Registry.ListModules()
}

// ListModules returns all registered modules sorted by ID
func (r *ModuleRegistry) ListModules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ordered()
}

// Reset clears the registry. Used by tests.
func (r *ModuleRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = make(map[string]Module)
	r.initialized = false
}

// ordered returns modules sorted by ID for deterministic load order.
// Callers must hold the lock.
func (r *ModuleRegistry) ordered() []Module {
	ids := make([]string, 0, len(r.modules))
	for id := range r.modules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Module, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.modules[id])
	}
	return out
}
