package fetcher

import "influencer-srv/internal/model"

const (
	DefaultTopResult   = 1
	DefaultVideosLimit = 10
	MaxVideosLimit     = 50
	DefaultPostsLimit  = 10
	DefaultTweetsLimit = 20

	// CommentSampleSize bounds how many top-level comments are classified
	// per video.
	CommentSampleSize = 100

	// ReplySampleSize bounds how many replies of the newest tweet are
	// classified. Reply search is the most rate-limited Twitter call, so
	// only the first tweet of a batch is sampled.
	ReplySampleSize = 25
)

type YouTubeInput struct {
	Query       string
	TopResult   int
	VideosLimit int
}

type InstagramInput struct {
	Username   string
	PostsLimit int
}

type TwitterInput struct {
	Username string
}

// ChannelError reports one failed channel of a batch.
type ChannelError struct {
	ChannelID string `json:"channel_id"`
	Message   string `json:"message"`
}

// BatchOutput carries the stored profiles of a batch together with the
// channels that failed. A batch succeeds as long as the search itself did.
type BatchOutput struct {
	Profiles []model.InfluencerProfile
	Failed   []ChannelError
}

// Job is a fetch request carried over the queue.
type Job struct {
	Platform    model.Platform `json:"platform"`
	Query       string         `json:"query"`
	ByCategory  bool           `json:"by_category,omitempty"`
	TopResult   int            `json:"top_result,omitempty"`
	VideosLimit int            `json:"videos_limit,omitempty"`
	PostsLimit  int            `json:"posts_limit,omitempty"`
	CreatorID   string         `json:"creator_id,omitempty"`
}
