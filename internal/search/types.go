package search

import "influencer-srv/internal/model"

const (
	MaxQueryLength = 1000

	// CandidateLimit caps how many flattened candidate rows are handed to the
	// relevance oracle in one request.
	CandidateLimit = 500
)

// FullSchemaKeys enumerates every field path the key-selection stage may pick
// from. Paths use dot notation into the metrics and posts documents.
var FullSchemaKeys = []string{
	"_id",
	"name",
	"username",
	"bio",
	"platform",
	"followers",
	"metrics.engagement_rate_per_post",
	"metrics.like_comment_ratio",
	"metrics.post_frequency_per_week",
	"metrics.sentiment_score",
	"metrics.overall_score",
	"posts.title",
	"posts.description",
	"posts.published_at",
	"posts.views",
	"posts.likes",
	"posts.comments_total",
	"posts.category",
	"posts.content_based_category",
}

// FallbackKeys is used when the key-selection stage returns something other
// than a JSON array of known field paths.
var FallbackKeys = []string{
	"_id", "name", "username", "bio", "platform", "followers",
	"metrics.engagement_rate_per_post",
}

type SearchInput struct {
	Query string
}

type SearchOutput struct {
	Profiles         []model.InfluencerProfile `json:"profiles"`
	SelectedKeys     []string                  `json:"selectedKeys"`
	Total            int                       `json:"total"`
	CacheHit         bool                      `json:"cacheHit"`
	ProcessingTimeMs int64                     `json:"processingTimeMs"`
}

// FilterOutput is the whole-object mode result: the oracle's filtered objects
// are returned as-is rather than re-resolved against the store.
type FilterOutput struct {
	Results          []map[string]any `json:"results"`
	Total            int              `json:"total"`
	CacheHit         bool             `json:"cacheHit"`
	ProcessingTimeMs int64            `json:"processingTimeMs"`
}
