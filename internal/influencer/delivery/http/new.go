package http

import (
	"influencer-srv/internal/influencer"
	"influencer-srv/internal/middleware"
	"influencer-srv/pkg/discord"
	"influencer-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the influencer profile HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      influencer.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc influencer.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
