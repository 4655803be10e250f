package youtube

import "context"

// IYouTube wraps the YouTube Data API v3 calls the fetchers need.
// Implementations are safe for concurrent use.
type IYouTube interface {
	// SearchChannels returns channel IDs matching the query, best match first.
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]string, error)

	// Channel returns the channel snippet, statistics and uploads playlist id.
	Channel(ctx context.Context, channelID string) (Channel, error)

	// PlaylistVideoIDs returns the most recent video ids of a playlist.
	PlaylistVideoIDs(ctx context.Context, playlistID string, maxResults int64) ([]string, error)

	// Videos returns full details for up to 50 video ids.
	Videos(ctx context.Context, videoIDs []string) ([]Video, error)

	// CategoryMap returns the official category id to title mapping.
	CategoryMap(ctx context.Context) (map[string]string, error)

	// Comments returns up to maxResults top-level comment texts of a video.
	Comments(ctx context.Context, videoID string, maxResults int64) ([]string, error)
}
