package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mantonx/streambase/internal/errors"
	"github.com/mantonx/streambase/internal/events"
)

// GetSeasons handles GET /api/content/:id/seasons.
// Episodes are preloaded so the admin UI renders the full tree in one call.
func (h *Handler) GetSeasons(c *gin.Context) {
	contentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	seasons, err := h.store.GetSeasonsByContentID(c.Request.Context(), contentID)
	if err != nil {
		apperrors.HandleInternalError(c, "Failed to fetch seasons", err)
		return
	}
	c.JSON(http.StatusOK, seasons)
}

// CreateSeason handles POST /api/seasons
func (h *Handler) CreateSeason(c *gin.Context) {
	var req SeasonInsert
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
			{Field: "", Rule: "json", Message: err.Error()},
		})
		return
	}

	if fields := checkStruct(&req); fields != nil {
		apperrors.HandleValidationError(c, "Invalid data", fields)
		return
	}

	season := req.toModel()
	season.ContentID = req.ContentID
	if err := h.store.CreateSeason(c.Request.Context(), &season); err != nil {
		apperrors.HandleInternalError(c, "Failed to create season", err)
		return
	}

	h.publish(events.EventSeasonCreated, map[string]interface{}{
		"season_id":  season.ID,
		"content_id": season.ContentID,
	})
	c.JSON(http.StatusOK, season)
}

// UpdateSeason handles PUT /api/seasons/:id
func (h *Handler) UpdateSeason(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req SeasonPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
			{Field: "", Rule: "json", Message: err.Error()},
		})
		return
	}

	if fields := checkStruct(&req); fields != nil {
		apperrors.HandleValidationError(c, "Invalid data", fields)
		return
	}

	season, err := h.store.UpdateSeason(c.Request.Context(), id, req.toUpdates())
	if err != nil {
		h.handleStorageError(c, "Season", "update season", err)
		return
	}
	c.JSON(http.StatusOK, season)
}

// DeleteSeason handles DELETE /api/seasons/:id.
// The season's episodes are removed with it.
func (h *Handler) DeleteSeason(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteSeason(c.Request.Context(), id); err != nil {
		h.handleStorageError(c, "Season", "delete season", err)
		return
	}

	h.publish(events.EventSeasonDeleted, map[string]interface{}{"season_id": id})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetEpisodes handles GET /api/seasons/:id/episodes
func (h *Handler) GetEpisodes(c *gin.Context) {
	seasonID, ok := parseID(c, "id")
	if !ok {
		return
	}

	episodes, err := h.store.GetEpisodesBySeasonID(c.Request.Context(), seasonID)
	if err != nil {
		apperrors.HandleInternalError(c, "Failed to fetch episodes", err)
		return
	}
	c.JSON(http.StatusOK, episodes)
}

// CreateEpisode handles POST /api/episodes
func (h *Handler) CreateEpisode(c *gin.Context) {
	var req EpisodeInsert
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
			{Field: "", Rule: "json", Message: err.Error()},
		})
		return
	}

	if fields := checkStruct(&req); fields != nil {
		apperrors.HandleValidationError(c, "Invalid data", fields)
		return
	}

	episode := req.toModel()
	episode.SeasonID = req.SeasonID
	if err := h.store.CreateEpisode(c.Request.Context(), &episode); err != nil {
		apperrors.HandleInternalError(c, "Failed to create episode", err)
		return
	}

	h.publish(events.EventEpisodeCreated, map[string]interface{}{
		"episode_id": episode.ID,
		"season_id":  episode.SeasonID,
	})
	c.JSON(http.StatusOK, episode)
}

// UpdateEpisode handles PUT /api/episodes/:id
func (h *Handler) UpdateEpisode(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req EpisodePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleValidationError(c, "Invalid data", []apperrors.FieldError{
			{Field: "", Rule: "json", Message: err.Error()},
		})
		return
	}

	if fields := checkStruct(&req); fields != nil {
		apperrors.HandleValidationError(c, "Invalid data", fields)
		return
	}

	episode, err := h.store.UpdateEpisode(c.Request.Context(), id, req.toUpdates())
	if err != nil {
		h.handleStorageError(c, "Episode", "update episode", err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

// DeleteEpisode handles DELETE /api/episodes/:id
func (h *Handler) DeleteEpisode(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteEpisode(c.Request.Context(), id); err != nil {
		h.handleStorageError(c, "Episode", "delete episode", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
