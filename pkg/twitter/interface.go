package twitter

import (
	"context"
	"fmt"
	"time"

	pkghttp "influencer-srv/pkg/http"
)

// ITwitter defines the interface for the Twitter v2 API calls the fetchers
// need. Implementations are safe for concurrent use.
type ITwitter interface {
	// UserByUsername looks up a user with public metrics, bio and avatar.
	UserByUsername(ctx context.Context, username string) (User, error)

	// RecentTweets returns recent original tweets (no retweets, no replies).
	RecentTweets(ctx context.Context, userID string, maxResults int) ([]Tweet, error)

	// Replies returns reply texts of a tweet's conversation.
	Replies(ctx context.Context, tweetID string, maxResults int) ([]string, error)
}

// New creates a new Twitter v2 API client.
func New(cfg Config) (ITwitter, error) {
	if cfg.BearerToken == "" {
		return nil, fmt.Errorf("twitter: bearer token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &twImpl{
		cfg: cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   2,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
