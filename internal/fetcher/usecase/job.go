package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"influencer-srv/internal/fetcher"
	"influencer-srv/internal/model"
)

func (uc *implUseCase) Enqueue(ctx context.Context, sc model.Scope, job fetcher.Job) error {
	if uc.producer == nil {
		return fetcher.ErrQueueFailed
	}
	if !job.Platform.IsValid() || job.Query == "" {
		return fetcher.ErrInvalidInput
	}
	if job.CreatorID == "" {
		job.CreatorID = sc.UserID
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("%w: %v", fetcher.ErrQueueFailed, err)
	}
	if err := uc.producer.Publish([]byte(job.Query), payload); err != nil {
		uc.l.Errorf(ctx, "fetcher.usecase.Enqueue: publish failed: %v", err)
		return fmt.Errorf("%w: %v", fetcher.ErrQueueFailed, err)
	}

	uc.l.Infof(ctx, "fetcher.usecase.Enqueue: queued %s fetch for %q", job.Platform, job.Query)
	return nil
}

// Run executes a queued job with the creator recorded at enqueue time.
func (uc *implUseCase) Run(ctx context.Context, job fetcher.Job) error {
	sc := model.Scope{UserID: job.CreatorID}

	var err error
	switch job.Platform {
	case model.PlatformYouTube:
		input := fetcher.YouTubeInput{
			Query:       job.Query,
			TopResult:   job.TopResult,
			VideosLimit: job.VideosLimit,
		}
		if job.ByCategory {
			_, err = uc.FetchYouTubeByCategory(ctx, sc, input)
		} else {
			_, err = uc.FetchYouTubeByName(ctx, sc, input)
		}
	case model.PlatformInstagram:
		_, err = uc.FetchInstagram(ctx, sc, fetcher.InstagramInput{
			Username:   job.Query,
			PostsLimit: job.PostsLimit,
		})
	case model.PlatformTwitter:
		_, err = uc.FetchTwitter(ctx, sc, fetcher.TwitterInput{Username: job.Query})
	default:
		return fetcher.ErrInvalidInput
	}
	return err
}
