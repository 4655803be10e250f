package http

import (
	"influencer-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/fetch-influencer-youtube-channel-name", h.FetchYouTubeByName)
		api.POST("/fetch-influencer-youtube-category-name", h.FetchYouTubeByCategory)
		api.POST("/fetch-influencer-instagram", h.FetchInstagram)
		api.POST("/fetch-influencer-twitter", h.FetchTwitter)
	}
}
