package http

import (
	"influencer-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	// Signup, login and the OAuth redirect target run before a session exists.
	public := r.Group("/api/v1")
	{
		public.POST("/users/signup", h.Signup)
		public.POST("/users/login", h.Login)
		public.GET("/oauth/facebook/callback", h.FacebookCallback)
	}

	api := r.Group("/api/v1/users")
	api.Use(mw.Auth())
	{
		api.POST("/stats", h.Stats)
	}
}
