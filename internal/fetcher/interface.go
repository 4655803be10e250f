package fetcher

import (
	"context"

	"influencer-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// FetchYouTubeByName fetches channels matching a channel name, processes
	// their recent uploads and stores the resulting profiles.
	FetchYouTubeByName(ctx context.Context, sc model.Scope, input YouTubeInput) (BatchOutput, error)

	// FetchYouTubeByCategory fetches the top channels of a category.
	FetchYouTubeByCategory(ctx context.Context, sc model.Scope, input YouTubeInput) (BatchOutput, error)

	// FetchInstagram fetches one business account with its recent media.
	FetchInstagram(ctx context.Context, sc model.Scope, input InstagramInput) (model.InfluencerProfile, error)

	// FetchTwitter fetches one user with their recent original tweets.
	FetchTwitter(ctx context.Context, sc model.Scope, input TwitterInput) (model.InfluencerProfile, error)

	// Enqueue publishes a fetch job to be run by the consumer.
	Enqueue(ctx context.Context, sc model.Scope, job Job) error

	// Run executes a previously enqueued fetch job.
	Run(ctx context.Context, job Job) error
}
