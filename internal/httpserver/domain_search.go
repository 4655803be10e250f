package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"influencer-srv/internal/middleware"
	searchHTTP "influencer-srv/internal/search/delivery/http"
	searchRedis "influencer-srv/internal/search/repository/redis"
	searchUsecase "influencer-srv/internal/search/usecase"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheRepo := searchRedis.New(srv.redisClient, srv.l)

	uc := searchUsecase.New(srv.influencerRepo, cacheRepo, srv.geminiClient, srv.l, searchUsecase.Config{
		CandidateLimit: srv.config.Search.CandidateLimit,
		MaxQueryLength: srv.config.Search.MaxQueryLength,
	})

	handler := searchHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Search domain registered")
	return nil
}
