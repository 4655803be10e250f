package usecase

import (
	"context"
	"fmt"
	"time"

	"influencer-srv/internal/fetcher"
	"influencer-srv/internal/influencer"
	"influencer-srv/internal/model"
	"influencer-srv/internal/scoring"
)

// instagramTimestampLayout matches the Graph API timestamp format.
const instagramTimestampLayout = "2006-01-02T15:04:05-0700"

func (uc *implUseCase) FetchInstagram(ctx context.Context, sc model.Scope, input fetcher.InstagramInput) (model.InfluencerProfile, error) {
	if input.Username == "" {
		return model.InfluencerProfile{}, fetcher.ErrInvalidInput
	}
	if input.PostsLimit <= 0 {
		input.PostsLimit = fetcher.DefaultPostsLimit
	}

	account, err := uc.ig.BusinessDiscovery(ctx, input.Username, input.PostsLimit)
	if err != nil {
		uc.l.Errorf(ctx, "fetcher.usecase.FetchInstagram: business discovery failed for %s: %v", input.Username, err)
		return model.InfluencerProfile{}, fmt.Errorf("%w: %v", fetcher.ErrFetchFailed, err)
	}

	tasks := make([]visualTask, len(account.Media))
	for i, media := range account.Media {
		url := media.ThumbnailURL
		if url == "" {
			url = media.MediaURL
		}
		tasks[i] = visualTask{slot: i, postID: media.ID, url: url}
	}
	dominantColors := uc.analyzeVisuals(ctx, model.PlatformInstagram, tasks)

	posts := make([]model.PostStats, 0, len(account.Media))
	for i, media := range account.Media {
		styleTags := scoring.ImageVisualTags(media.Caption)

		var publishedAt *time.Time
		if media.Timestamp != "" {
			if ts, err := time.Parse(instagramTimestampLayout, media.Timestamp); err == nil {
				publishedAt = &ts
			}
		}

		// The API only reports views for videos.
		var views *int
		if media.MediaType == "VIDEO" {
			views = intPtr(media.ViewsCount)
		}

		post := model.PostStats{
			PostID:                media.ID,
			Title:                 media.Caption,
			PublishedAt:           publishedAt,
			Views:                 views,
			Likes:                 intPtr(media.LikeCount),
			CommentsTotal:         intPtr(media.CommentsCount),
			ThumbnailURL:          tasks[i].url,
			MediaURL:              tasks[i].url,
			MediaType:             media.MediaType,
			DominantColors:        dominantColors[i],
			VisualStyleTags:       styleTags,
			VisualAestheticsScore: scoring.ImageAestheticsScore(styleTags, dominantColors[i]),
		}
		posts = append(posts, post)
	}

	metrics := scoring.ComputeInstagram(scoring.Aggregate{
		Followers: account.FollowersCount,
		Posts:     posts,
	})

	name := account.Name
	if name == "" {
		name = input.Username
	}

	profile := model.InfluencerProfile{
		PlatformID:    account.ID,
		Platform:      model.PlatformInstagram,
		Name:          name,
		Username:      account.Username,
		Bio:           account.Biography,
		ProfilePicURL: account.ProfilePictureURL,
		Followers:     intPtr(account.FollowersCount),
		Posts:         posts,
		Metrics:       metrics,
		CreatorID:     creatorFromScope(sc),
	}

	saved, err := uc.influencerUC.Upsert(ctx, influencer.UpsertInput{Profile: profile})
	if err != nil {
		return model.InfluencerProfile{}, fmt.Errorf("%w: %v", fetcher.ErrStoreFailed, err)
	}
	return saved, nil
}
