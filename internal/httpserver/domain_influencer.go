package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	influencerHTTP "influencer-srv/internal/influencer/delivery/http"
	influencerPostgre "influencer-srv/internal/influencer/repository/postgre"
	influencerUsecase "influencer-srv/internal/influencer/usecase"
	"influencer-srv/internal/middleware"
)

func (srv *HTTPServer) setupInfluencerDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := influencerPostgre.New(srv.postgresDB, srv.l)
	srv.influencerRepo = repo

	uc := influencerUsecase.New(repo, srv.profileProducer, srv.l)
	srv.influencerUC = uc

	handler := influencerHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Influencer domain registered")
	return nil
}
