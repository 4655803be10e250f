package youtube

import (
	"errors"
	"time"

	yt "google.golang.org/api/youtube/v3"
)

const (
	// DefaultRegionCode is used for the videoCategories lookup.
	DefaultRegionCode = "US"

	// MaxCommentResults is the API ceiling for one commentThreads page.
	MaxCommentResults = 100
)

var (
	ErrAPIKeyRequired  = errors.New("youtube: api key is required")
	ErrChannelNotFound = errors.New("youtube: channel not found")
)

// Config holds the YouTube client configuration.
type Config struct {
	APIKey string
}

type ytImpl struct {
	service *yt.Service
}

// Channel is the subset of channel data the fetchers use.
type Channel struct {
	ID              string
	Title           string
	Description     string
	Subscribers     int64
	ProfilePicURL   string
	UploadsPlaylist string
}

// Video is the subset of video data the fetchers use.
type Video struct {
	ID           string
	Title        string
	Description  string
	PublishedAt  *time.Time
	Tags         []string
	CategoryID   string
	ThumbnailURL string
	Duration     string
	Views        int64
	Likes        int64
	Comments     int64
}
