package instagram

import (
	"context"
	"fmt"
	"time"

	pkghttp "influencer-srv/pkg/http"
)

// IInstagram defines the interface for the Instagram Graph API
// business_discovery lookup. Implementations are safe for concurrent use.
type IInstagram interface {
	BusinessDiscovery(ctx context.Context, username string, postsLimit int) (Profile, error)
}

// New creates a new Instagram Graph API client.
func New(cfg Config) (IInstagram, error) {
	if cfg.BusinessID == "" || cfg.AccessToken == "" {
		return nil, fmt.Errorf("instagram: business id and access token are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &igImpl{
		cfg: cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   2,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
