package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "github.com/mantonx/streambase/internal/errors"
	"github.com/mantonx/streambase/internal/events"
	"github.com/mantonx/streambase/internal/modules/catalogmodule/storage"
)

// Handler carries the dependencies shared by all catalog handlers
type Handler struct {
	store *storage.Storage
	bus   events.EventBus
}

// NewHandler creates a catalog API handler
func NewHandler(store *storage.Storage, bus events.EventBus) *Handler {
	return &Handler{store: store, bus: bus}
}

// parseID extracts a positive integer path parameter. On failure it writes
// a 400 response and returns false.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.HandleValidationError(c, "Invalid "+name, []apperrors.FieldError{
			{Field: name, Rule: "numeric", Message: "must be a positive integer"},
		})
		return 0, false
	}
	return uint(id), true
}

// handleStorageError maps storage failures onto the 404/500 taxonomy
func (h *Handler) handleStorageError(c *gin.Context, resource, operation string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		apperrors.HandleNotFound(c, resource)
		return
	}
	apperrors.HandleInternalError(c, "Failed to "+operation, err)
}

// publish emits a catalog event without blocking the request
func (h *Handler) publish(eventType events.EventType, data map[string]interface{}) {
	if h.bus == nil {
		return
	}
	h.bus.PublishAsync(events.NewEvent(eventType, "module:catalog", data))
}
