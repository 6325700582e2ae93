package analyticsmodule

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/mantonx/streambase/internal/database"
	apperrors "github.com/mantonx/streambase/internal/errors"
	"github.com/mantonx/streambase/internal/events"
)

// EventInsert is the writable shape for POST /api/analytics
type EventInsert struct {
	ContentID *uint                  `json:"contentId"`
	EventType string                 `json:"eventType" validate:"required,oneof=view play like add_to_list"`
	UserID    *uint                  `json:"userId"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// Handler carries the analytics HTTP dependencies
type Handler struct {
	store *Storage
	bus   events.EventBus
}

// NewHandler creates an analytics API handler
func NewHandler(store *Storage, bus events.EventBus) *Handler {
	return &Handler{store: store, bus: bus}
}

// RecordEvent handles POST /api/analytics
func (h *Handler) RecordEvent(c *gin.Context) {
	var req EventInsert
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
			{Field: "", Rule: "json", Message: err.Error()},
		})
		return
	}

	if fields := checkEventInsert(&req); fields != nil {
		apperrors.HandleValidationError(c, "Invalid data", fields)
		return
	}

	event := database.AnalyticsEvent{
		ContentID: req.ContentID,
		EventType: req.EventType,
		UserID:    req.UserID,
		Metadata:  datatypes.JSONMap(req.Metadata),
	}
	if err := h.store.CreateEvent(c.Request.Context(), &event); err != nil {
		apperrors.HandleInternalError(c, "Failed to create analytics event", err)
		return
	}

	if h.bus != nil {
		h.bus.PublishAsync(events.NewEvent(events.EventAnalyticsRecorded, "module:analytics",
			map[string]interface{}{"event": event}))
	}
	c.JSON(http.StatusOK, event)
}

// GetSummary handles GET /api/analytics
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.store.Summary(c.Request.Context())
	if err != nil {
		apperrors.HandleInternalError(c, "Failed to fetch analytics", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
