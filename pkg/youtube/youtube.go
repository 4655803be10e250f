package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// New creates a YouTube Data API client.
func New(ctx context.Context, cfg Config) (IYouTube, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	service, err := yt.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create service: %w", err)
	}

	return &ytImpl{service: service}, nil
}

func (y *ytImpl) SearchChannels(ctx context.Context, query string, maxResults int64) ([]string, error) {
	call := y.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(maxResults).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("SearchChannels: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.ChannelId != "" {
			ids = append(ids, item.Id.ChannelId)
		}
	}
	return ids, nil
}

func (y *ytImpl) Channel(ctx context.Context, channelID string) (Channel, error) {
	call := y.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(channelID).
		MaxResults(1).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return Channel{}, fmt.Errorf("Channel: %w", err)
	}
	if len(resp.Items) == 0 {
		return Channel{}, ErrChannelNotFound
	}

	item := resp.Items[0]
	ch := Channel{ID: item.Id}
	if item.Snippet != nil {
		ch.Title = item.Snippet.Title
		ch.Description = item.Snippet.Description
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			ch.ProfilePicURL = item.Snippet.Thumbnails.High.Url
		}
	}
	if item.Statistics != nil {
		ch.Subscribers = int64(item.Statistics.SubscriberCount)
	}
	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		ch.UploadsPlaylist = item.ContentDetails.RelatedPlaylists.Uploads
	}
	// Uploads playlist id is derivable from the channel id when missing.
	if ch.UploadsPlaylist == "" && strings.HasPrefix(channelID, "UC") {
		ch.UploadsPlaylist = "UU" + channelID[2:]
	}
	return ch, nil
}

func (y *ytImpl) PlaylistVideoIDs(ctx context.Context, playlistID string, maxResults int64) ([]string, error) {
	call := y.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("PlaylistVideoIDs: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
			ids = append(ids, item.ContentDetails.VideoId)
		}
	}
	return ids, nil
}

func (y *ytImpl) Videos(ctx context.Context, videoIDs []string) ([]Video, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	call := y.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoIDs...).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("Videos: %w", err)
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		v := Video{ID: item.Id}
		if item.Snippet != nil {
			v.Title = item.Snippet.Title
			v.Description = item.Snippet.Description
			v.Tags = item.Snippet.Tags
			v.CategoryID = item.Snippet.CategoryId
			if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
				v.ThumbnailURL = item.Snippet.Thumbnails.High.Url
			}
			if item.Snippet.PublishedAt != "" {
				if ts, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
					v.PublishedAt = &ts
				}
			}
		}
		if item.Statistics != nil {
			v.Views = int64(item.Statistics.ViewCount)
			v.Likes = int64(item.Statistics.LikeCount)
			v.Comments = int64(item.Statistics.CommentCount)
		}
		if item.ContentDetails != nil {
			v.Duration = item.ContentDetails.Duration
		}
		videos = append(videos, v)
	}
	return videos, nil
}

func (y *ytImpl) CategoryMap(ctx context.Context) (map[string]string, error) {
	call := y.service.VideoCategories.List([]string{"snippet"}).
		RegionCode(DefaultRegionCode).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("CategoryMap: %w", err)
	}

	categories := make(map[string]string, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet != nil {
			categories[item.Id] = item.Snippet.Title
		}
	}
	return categories, nil
}

func (y *ytImpl) Comments(ctx context.Context, videoID string, maxResults int64) ([]string, error) {
	if maxResults <= 0 || maxResults > MaxCommentResults {
		maxResults = MaxCommentResults
	}

	call := y.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(maxResults).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("Comments: %w", err)
	}

	comments := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet != nil && item.Snippet.TopLevelComment != nil && item.Snippet.TopLevelComment.Snippet != nil {
			comments = append(comments, item.Snippet.TopLevelComment.Snippet.TextDisplay)
		}
	}
	return comments, nil
}
