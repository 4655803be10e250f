package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"influencer-srv/internal/middleware"
	userHTTP "influencer-srv/internal/user/delivery/http"
	userPostgre "influencer-srv/internal/user/repository/postgre"
	userUsecase "influencer-srv/internal/user/usecase"
	pkgHTTP "influencer-srv/pkg/http"
)

func (srv *HTTPServer) setupUserDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userPostgre.New(srv.postgresDB, srv.l)

	httpClient := pkgHTTP.NewClient(pkgHTTP.DefaultConfig())

	uc := userUsecase.New(repo, srv.encrypter, srv.jwtManager, httpClient, srv.l, userUsecase.Config{
		FBAppID:       srv.config.Facebook.AppID,
		FBAppSecret:   srv.config.Facebook.AppSecret,
		FBRedirectURI: srv.config.Facebook.RedirectURI,
		FBGraphURL:    srv.config.Facebook.GraphURL,
		FrontendURL:   srv.config.Facebook.FrontendURL,
	})

	handler := userHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
