package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mantonx/streambase/internal/database"
	apperrors "github.com/mantonx/streambase/internal/errors"
	"github.com/mantonx/streambase/internal/events"
)

// GetUpcoming handles GET /api/upcoming-content.
// Entries come back in section order, the explicit display rank.
func (h *Handler) GetUpcoming(c *gin.Context) {
	items, err := h.store.GetAllUpcoming(c.Request.Context())
	if err != nil {
		apperrors.HandleInternalError(c, "Failed to fetch upcoming content", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetUpcomingByID handles GET /api/upcoming-content/:id
func (h *Handler) GetUpcomingByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.store.GetUpcomingByID(c.Request.Context(), id)
	if err != nil {
		h.handleStorageError(c, "Upcoming content", "fetch upcoming content", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateUpcoming handles POST /api/upcoming-content.
// The payload is schema-validated like the PUT path; releaseDate accepts
// YYYY-MM-DD or RFC3339 strings.
func (h *Handler) CreateUpcoming(c *gin.Context) {
	var req UpcomingInsert
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
			{Field: "", Rule: "json", Message: err.Error()},
		})
		return
	}

	contentType, ok := database.NormalizeContentType(req.Type)
	if !ok {
		apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
			{Field: "type", Rule: "oneof", Message: "must be one of: movie tv_show"},
		})
		return
	}

	if fields := checkStruct(&req); fields != nil {
		apperrors.HandleValidationError(c, "Invalid data", fields)
		return
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
			{Field: "releaseDate", Rule: "datetime", Message: err.Error()},
		})
		return
	}

	item := req.toModel(contentType, releaseDate)
	if err := h.store.CreateUpcoming(c.Request.Context(), &item); err != nil {
		apperrors.HandleInternalError(c, "Failed to create upcoming content", err)
		return
	}

	h.publish(events.EventUpcomingCreated, map[string]interface{}{
		"upcoming_id": item.ID,
		"title":       item.Title,
	})
	c.JSON(http.StatusOK, item)
}

// UpdateUpcoming handles PUT /api/upcoming-content/:id
func (h *Handler) UpdateUpcoming(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpcomingPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
			{Field: "", Rule: "json", Message: err.Error()},
		})
		return
	}

	var contentType *database.ContentType
	if req.Type != nil {
		normalized, valid := database.NormalizeContentType(*req.Type)
		if !valid {
			apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
				{Field: "type", Rule: "oneof", Message: "must be one of: movie tv_show"},
			})
			return
		}
		contentType = &normalized
	}

	if fields := checkStruct(&req); fields != nil {
		apperrors.HandleValidationError(c, "Invalid data", fields)
		return
	}

	var releaseDate *time.Time
	if req.ReleaseDate != nil {
		parsed, err := parseReleaseDate(*req.ReleaseDate)
		if err != nil {
			apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
				{Field: "releaseDate", Rule: "datetime", Message: err.Error()},
			})
			return
		}
		releaseDate = &parsed
	}

	item, err := h.store.UpdateUpcoming(c.Request.Context(), id, req.toUpdates(contentType, releaseDate))
	if err != nil {
		h.handleStorageError(c, "Upcoming content", "update upcoming content", err)
		return
	}

	h.publish(events.EventUpcomingUpdated, map[string]interface{}{"upcoming_id": item.ID})
	c.JSON(http.StatusOK, item)
}

// DeleteUpcoming handles DELETE /api/upcoming-content/:id
func (h *Handler) DeleteUpcoming(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteUpcoming(c.Request.Context(), id); err != nil {
		h.handleStorageError(c, "Upcoming content", "delete upcoming content", err)
		return
	}

	h.publish(events.EventUpcomingDeleted, map[string]interface{}{"upcoming_id": id})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
