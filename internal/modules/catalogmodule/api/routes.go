package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all catalog module routes
func RegisterRoutes(router *gin.Engine, handler *Handler) {
	contentGroup := router.Group("/api/content")
	{
		contentGroup.GET("", handler.GetContent)
		contentGroup.GET("/published", handler.GetPublishedContent)
		contentGroup.GET("/:id", handler.GetContentByID)
		contentGroup.GET("/:id/seasons", handler.GetSeasons)
		contentGroup.POST("", handler.CreateContent)
		contentGroup.PUT("/:id", handler.UpdateContent)
		contentGroup.DELETE("/:id", handler.DeleteContent)
	}

	seasonGroup := router.Group("/api/seasons")
	{
		seasonGroup.GET("/:id/episodes", handler.GetEpisodes)
		seasonGroup.POST("", handler.CreateSeason)
		seasonGroup.PUT("/:id", handler.UpdateSeason)
		seasonGroup.DELETE("/:id", handler.DeleteSeason)
	}

	episodeGroup := router.Group("/api/episodes")
	{
		episodeGroup.POST("", handler.CreateEpisode)
		episodeGroup.PUT("/:id", handler.UpdateEpisode)
		episodeGroup.DELETE("/:id", handler.DeleteEpisode)
	}

	upcomingGroup := router.Group("/api/upcoming-content")
	{
		upcomingGroup.GET("", handler.GetUpcoming)
		upcomingGroup.GET("/:id", handler.GetUpcomingByID)
		upcomingGroup.POST("", handler.CreateUpcoming)
		upcomingGroup.PUT("/:id", handler.UpdateUpcoming)
		upcomingGroup.DELETE("/:id", handler.DeleteUpcoming)
	}
}
