package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"influencer-srv/internal/fetcher"
	"influencer-srv/internal/influencer"
	"influencer-srv/internal/model"
	"influencer-srv/internal/scoring"
	"influencer-srv/pkg/twitter"
)

func (uc *implUseCase) FetchTwitter(ctx context.Context, sc model.Scope, input fetcher.TwitterInput) (model.InfluencerProfile, error) {
	if input.Username == "" {
		return model.InfluencerProfile{}, fetcher.ErrInvalidInput
	}

	user, err := uc.tw.UserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, twitter.ErrUserNotFound) {
			return model.InfluencerProfile{}, fetcher.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "fetcher.usecase.FetchTwitter: user lookup failed for %s: %v", input.Username, err)
		return model.InfluencerProfile{}, fmt.Errorf("%w: %v", fetcher.ErrFetchFailed, err)
	}

	tweets, err := uc.tw.RecentTweets(ctx, user.ID, fetcher.DefaultTweetsLimit)
	if err != nil {
		uc.l.Errorf(ctx, "fetcher.usecase.FetchTwitter: tweet fetch failed for %s: %v", input.Username, err)
		return model.InfluencerProfile{}, fmt.Errorf("%w: %v", fetcher.ErrFetchFailed, err)
	}

	posts := make([]model.PostStats, 0, len(tweets))
	scoringTweets := make([]scoring.Tweet, 0, len(tweets))
	for i, t := range tweets {
		good, bad := 0, 0
		// Reply search is budgeted: only the newest tweet gets sampled.
		if i == 0 {
			replies, err := uc.tw.Replies(ctx, t.ID, fetcher.ReplySampleSize)
			if err != nil {
				uc.l.Debugf(ctx, "fetcher.usecase.FetchTwitter: replies unavailable for %s: %v", t.ID, err)
			}
			for _, reply := range replies {
				if uc.analyzer.IsPositive(reply) {
					good++
				} else {
					bad++
				}
			}
		}

		var createdAt *time.Time
		if t.CreatedAt != "" {
			if ts, err := time.Parse(time.RFC3339, t.CreatedAt); err == nil {
				createdAt = &ts
			}
		}

		scoringTweets = append(scoringTweets, scoring.Tweet{
			Likes:        t.Likes(),
			Replies:      t.Replies(),
			Retweets:     t.Retweets(),
			CreatedAt:    createdAt,
			TextPolarity: uc.analyzer.Polarity(t.Text),
		})

		posts = append(posts, model.PostStats{
			PostID:               t.ID,
			Title:                t.Text,
			Description:          t.Text,
			PublishedAt:          createdAt,
			Views:                intPtr(0),
			Likes:                intPtr(t.Likes()),
			CommentsTotal:        intPtr(t.Replies()),
			GoodComments:         intPtr(good),
			BadComments:          intPtr(bad),
			Category:             "General",
			ContentBasedCategory: scoring.CategorizeTweetText(t.Text),
		})
	}

	metrics := scoring.ComputeTwitter(user.Followers(), scoringTweets)
	scoring.RescaleTwitterSentiment(metrics, posts)

	profile := model.InfluencerProfile{
		PlatformID:    user.ID,
		Platform:      model.PlatformTwitter,
		Name:          user.Name,
		Username:      user.Username,
		Bio:           user.Description,
		ProfilePicURL: user.ProfileImageURL,
		Followers:     intPtr(user.Followers()),
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
