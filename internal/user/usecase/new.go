package usecase

import (
	"influencer-srv/internal/user"
	"influencer-srv/internal/user/repository"
	"influencer-srv/pkg/encrypter"
	pkgHTTP "influencer-srv/pkg/http"
	"influencer-srv/pkg/log"
	"influencer-srv/pkg/scope"
)

// DefaultFBGraphURL is the Graph API base used for the OAuth code exchange.
const DefaultFBGraphURL = "https://graph.facebook.com/v24.0"

// Config - Cấu hình UseCase
type Config struct {
	FBAppID       string
	FBAppSecret   string
	FBRedirectURI string
	FBGraphURL    string
	FrontendURL   string
}

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	repo       repository.PostgresRepository
	encrypter  encrypter.Encrypter
	jwtManager scope.Manager
	httpClient pkgHTTP.IClient
	l          log.Logger
	cfg        Config
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	enc encrypter.Encrypter,
	jwtManager scope.Manager,
	httpClient pkgHTTP.IClient,
	l log.Logger,
	cfg Config,
) user.UseCase {
	if cfg.FBGraphURL == "" {
		cfg.FBGraphURL = DefaultFBGraphURL
	}

	return &implUseCase{
		repo:       repo,
		encrypter:  enc,
		jwtManager: jwtManager,
		httpClient: httpClient,
		l:          l,
		cfg:        cfg,
	}
}
