package http

import (
	"influencer-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/profiles")
	api.Use(mw.Auth())
	{
		api.POST("/get-one", h.GetOne)
		api.POST("/get-by-creator", h.GetByCreator)
		api.POST("/top-engagement", h.TopEngagement)
		api.POST("/delete", h.Delete)
	}
}
