package http

import (
	"influencer-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/search-influencers", h.Search)
		api.POST("/search-influencers-filter", h.Filter)
	}
}
