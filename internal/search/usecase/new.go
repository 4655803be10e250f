package usecase

import (
	"influencer-srv/internal/search"
	"influencer-srv/internal/search/repository"
	"influencer-srv/pkg/gemini"
	"influencer-srv/pkg/log"
)

// Config - Cấu hình UseCase
type Config struct {
	CandidateLimit int // Max flattened candidate rows per oracle call (default 500)
	MaxQueryLength int // Max query length in chars (default 1000)
}

// DefaultConfig - Cấu hình mặc định
func DefaultConfig() Config {
	return Config{
		CandidateLimit: search.CandidateLimit,
		MaxQueryLength: search.MaxQueryLength,
	}
}

type implUseCase struct {
	profileRepo repository.ProfileRepository
	cacheRepo   repository.CacheRepository
	oracle      gemini.IGemini
	l           log.Logger
	cfg         Config
}

// New - Factory function
func New(
	profileRepo repository.ProfileRepository,
	cacheRepo repository.CacheRepository,
	oracle gemini.IGemini,
	l log.Logger,
	cfg Config,
) search.UseCase {
	if cfg.CandidateLimit <= 0 {
		cfg.CandidateLimit = search.CandidateLimit
	}
	if cfg.MaxQueryLength <= 0 {
		cfg.MaxQueryLength = search.MaxQueryLength
	}
	return &implUseCase{
		profileRepo: profileRepo,
		cacheRepo:   cacheRepo,
		oracle:      oracle,
		l:           l,
		cfg:         cfg,
	}
}
