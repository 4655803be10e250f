package http

import (
	"github.com/gin-gonic/gin"

	"influencer-srv/internal/middleware"
	"influencer-srv/internal/search"
	"influencer-srv/pkg/discord"
	"influencer-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      search.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc search.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
