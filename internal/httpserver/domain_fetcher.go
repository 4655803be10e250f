package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	fetcherHTTP "influencer-srv/internal/fetcher/delivery/http"
	fetcherUsecase "influencer-srv/internal/fetcher/usecase"
	"influencer-srv/internal/middleware"
	"influencer-srv/pkg/colors"
	pkgHTTP "influencer-srv/pkg/http"
	"influencer-srv/pkg/instagram"
	"influencer-srv/pkg/sentiment"
	"influencer-srv/pkg/twitter"
	"influencer-srv/pkg/youtube"
)

func (srv *HTTPServer) setupFetcherDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	httpClient := pkgHTTP.NewClient(pkgHTTP.DefaultConfig())

	ytClient, err := youtube.New(ctx, youtube.Config{APIKey: srv.config.YouTube.APIKey})
	if err != nil {
		return fmt.Errorf("failed to create youtube client: %w", err)
	}

	igClient, err := instagram.New(instagram.Config{
		BaseURL:     srv.config.Instagram.BaseURL,
		BusinessID:  srv.config.Instagram.BusinessID,
		AccessToken: srv.config.Instagram.AccessToken,
	})
	if err != nil {
		return fmt.Errorf("failed to create instagram client: %w", err)
	}

	twClient, err := twitter.New(twitter.Config{
		BaseURL:     srv.config.Twitter.BaseURL,
		BearerToken: srv.config.Twitter.BearerToken,
	})
	if err != nil {
		return fmt.Errorf("failed to create twitter client: %w", err)
	}

	analyzer, err := sentiment.New()
	if err != nil {
		return fmt.Errorf("failed to create sentiment analyzer: %w", err)
	}

	uc := fetcherUsecase.New(
		ytClient,
		igClient,
		twClient,
		colors.New(),
		analyzer,
		srv.minioClient,
		httpClient,
		srv.influencerUC,
		srv.fetchProducer,
		srv.l,
		fetcherUsecase.Config{
			VisualWorkers: srv.config.Fetcher.VisualWorkers,
			ArchiveBucket: srv.config.Fetcher.ArchiveBucket,
		},
	)

	handler := fetcherHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Fetcher domain registered")
	return nil
}
