package usecase

import (
	"context"
	"fmt"
	"strings"

	"influencer-srv/internal/fetcher"
	"influencer-srv/internal/influencer"
	"influencer-srv/internal/model"
	"influencer-srv/internal/scoring"
)

func (uc *implUseCase) FetchYouTubeByName(ctx context.Context, sc model.Scope, input fetcher.YouTubeInput) (fetcher.BatchOutput, error) {
	return uc.processYouTubeSearch(ctx, sc, input, true)
}

func (uc *implUseCase) FetchYouTubeByCategory(ctx context.Context, sc model.Scope, input fetcher.YouTubeInput) (fetcher.BatchOutput, error) {
	return uc.processYouTubeSearch(ctx, sc, input, false)
}

// processYouTubeSearch resolves the query to channels and processes each one.
// A failing channel is reported in the batch result and never aborts the
// remaining channels.
func (uc *implUseCase) processYouTubeSearch(ctx context.Context, sc model.Scope, input fetcher.YouTubeInput, exactChannel bool) (fetcher.BatchOutput, error) {
	if input.Query == "" {
		return fetcher.BatchOutput{}, fetcher.ErrInvalidInput
	}
	if input.TopResult <= 0 {
		input.TopResult = fetcher.DefaultTopResult
	}
	if input.VideosLimit <= 0 {
		input.VideosLimit = fetcher.DefaultVideosLimit
	}
	if input.VideosLimit > fetcher.MaxVideosLimit {
		input.VideosLimit = fetcher.MaxVideosLimit
	}

	channelIDs, err := uc.yt.SearchChannels(ctx, input.Query, int64(input.TopResult))
	if err != nil {
		uc.l.Errorf(ctx, "fetcher.usecase.processYouTubeSearch: channel search failed: %v", err)
		return fetcher.BatchOutput{}, fmt.Errorf("%w: %v", fetcher.ErrFetchFailed, err)
	}
	if len(channelIDs) == 0 {
		if exactChannel {
			return fetcher.BatchOutput{}, fetcher.ErrChannelNotFound
		}
		return fetcher.BatchOutput{}, nil
	}

	// The category map is shared across the batch; a failure degrades every
	// video to the Unknown category.
	categoryMap, err := uc.yt.CategoryMap(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "fetcher.usecase.processYouTubeSearch: category map unavailable: %v", err)
		categoryMap = nil
	}

	var out fetcher.BatchOutput
	for _, channelID := range channelIDs {
		profile, err := uc.fetchYouTubeChannel(ctx, sc, channelID, input.VideosLimit, categoryMap)
		if err != nil {
			uc.l.Errorf(ctx, "fetcher.usecase.processYouTubeSearch: channel %s failed: %v", channelID, err)
			out.Failed = append(out.Failed, fetcher.ChannelError{ChannelID: channelID, Message: err.Error()})
			continue
		}
		out.Profiles = append(out.Profiles, profile)
	}
	return out, nil
}

func (uc *implUseCase) fetchYouTubeChannel(ctx context.Context, sc model.Scope, channelID string, videosLimit int, categoryMap map[string]string) (model.InfluencerProfile, error) {
	ch, err := uc.yt.Channel(ctx, channelID)
	if err != nil {
		return model.InfluencerProfile{}, err
	}

	var videoIDs []string
	if ch.UploadsPlaylist != "" {
		videoIDs, err = uc.yt.PlaylistVideoIDs(ctx, ch.UploadsPlaylist, int64(videosLimit))
		if err != nil {
			return model.InfluencerProfile{}, err
		}
	}

	videos, err := uc.yt.Videos(ctx, videoIDs)
	if err != nil {
		return model.InfluencerProfile{}, err
	}

	tasks := make([]visualTask, len(videos))
	for i, v := range videos {
		tasks[i] = visualTask{slot: i, postID: v.ID, url: v.ThumbnailURL}
	}
	dominantColors := uc.analyzeVisuals(ctx, model.PlatformYouTube, tasks)

	posts := make([]model.PostStats, 0, len(videos))
	for i, v := range videos {
		good, bad := uc.videoCommentSentiment(ctx, v.ID)

		visualText := v.Title + " " + v.Description + " " + strings.Join(v.Tags, " ")
		styleTags := scoring.VideoVisualTags(visualText)
		durationSeconds := scoring.ParseISO8601Duration(v.Duration)

		// No transcript source; pace stays zero and the content category is
		// derived from title and description.
		pace := scoring.SpeakingPaceWPM("", durationSeconds)

		category := "Unknown"
		if name, ok := categoryMap[v.CategoryID]; ok {
			category = name
		}

		post := model.PostStats{
			PostID:                v.ID,
			Title:                 v.Title,
			Description:           v.Description,
			PublishedAt:           v.PublishedAt,
			Views:                 intPtr(int(v.Views)),
			Likes:                 intPtr(int(v.Likes)),
			CommentsTotal:         intPtr(int(v.Comments)),
			GoodComments:          intPtr(good),
			BadComments:           intPtr(bad),
			Category:              category,
			ContentBasedCategory:  scoring.CategorizeVideoText(v.Title + " " + v.Description),
			ThumbnailURL:          v.ThumbnailURL,
			Tags:                  v.Tags,
			DurationSeconds:       durationSeconds,
			SpeakingPaceWPM:       pace,
			DominantColors:        dominantColors[i],
			VisualStyleTags:       styleTags,
			VisualAestheticsScore: scoring.VideoAestheticsScore(styleTags, pace, dominantColors[i]),
		}
		posts = append(posts, post)
	}

	metrics := scoring.ComputeYouTube(scoring.Aggregate{
		Followers: int(ch.Subscribers),
		Posts:     posts,
	})

	profile := model.InfluencerProfile{
		PlatformID:    ch.ID,
		Platform:      model.PlatformYouTube,
		Name:          ch.Title,
		Username:      ch.Title,
		Bio:           ch.Description,
		ProfilePicURL: ch.ProfilePicURL,
		Followers:     intPtr(int(ch.Subscribers)),
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

// videoCommentSentiment samples top-level comments and classifies them.
// Disabled comments or any fetch failure count as no comments at all.
func (uc *implUseCase) videoCommentSentiment(ctx context.Context, videoID string) (good, bad int) {
	comments, err := uc.yt.Comments(ctx, videoID, fetcher.CommentSampleSize)
	if err != nil {
		uc.l.Debugf(ctx, "fetcher.usecase.videoCommentSentiment: comments unavailable for %s: %v", videoID, err)
		return 0, 0
	}
	for _, text := range comments {
		if uc.analyzer.IsPositive(text) {
			good++
		} else {
			bad++
		}
	}
	return good, bad
}

func creatorFromScope(sc model.Scope) *string {
	if sc.UserID == "" {
		return nil
	}
	id := sc.UserID
	return &id
}
