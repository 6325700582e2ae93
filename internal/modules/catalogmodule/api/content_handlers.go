package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mantonx/streambase/internal/database"
	apperrors "github.com/mantonx/streambase/internal/errors"
	"github.com/mantonx/streambase/internal/events"
)

// GetContent handles GET /api/content.
// Returns every catalog entry ordered by creation time, newest first.
func (h *Handler) GetContent(c *gin.Context) {
	items, err := h.store.GetAllContent(c.Request.Context())
	if err != nil {
		apperrors.HandleInternalError(c, "Failed to fetch content", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetPublishedContent handles GET /api/content/published
func (h *Handler) GetPublishedContent(c *gin.Context) {
	items, err := h.store.GetPublishedContent(c.Request.Context())
	if err != nil {
		apperrors.HandleInternalError(c, "Failed to fetch published content", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetContentByID handles GET /api/content/:id
func (h *Handler) GetContentByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.store.GetContentByID(c.Request.Context(), id)
	if err != nil {
		h.handleStorageError(c, "Content", "fetch content", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateContent handles POST /api/content.
// A tv_show payload may carry nested seasons and episodes; the whole tree
// is inserted atomically.
func (h *Handler) CreateContent(c *gin.Context) {
	var req ContentInsert
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
	req.Type = string(contentType)

	if fields := checkStruct(&req); fields != nil {
		apperrors.HandleValidationError(c, "Invalid data", fields)
		return
	}

	item := req.toModel(contentType)
	if err := h.store.CreateContent(c.Request.Context(), &item); err != nil {
		apperrors.HandleInternalError(c, "Failed to create content", err)
		return
	}

	h.publish(events.EventContentCreated, map[string]interface{}{
		"content_id": item.ID,
		"title":      item.Title,
		"type":       item.Type,
	})
	c.JSON(http.StatusOK, item)
}

// UpdateContent handles PUT /api/content/:id with merge semantics:
// fields absent from the payload keep their stored values.
func (h *Handler) UpdateContent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ContentPatch
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

	item, err := h.store.UpdateContent(c.Request.Context(), id, req.toUpdates(contentType))
	if err != nil {
		h.handleStorageError(c, "Content", "update content", err)
		return
	}

	h.publish(events.EventContentUpdated, map[string]interface{}{"content_id": item.ID})
	c.JSON(http.StatusOK, item)
}

// DeleteContent handles DELETE /api/content/:id
func (h *Handler) DeleteContent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteContent(c.Request.Context(), id); err != nil {
		h.handleStorageError(c, "Content", "delete content", err)
		return
	}

	h.publish(events.EventContentDeleted, map[string]interface{}{"content_id": id})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
