package model

import "time"

// Platform is the closed set of supported social platforms.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
)

// IsValid reports whether the platform is one of the supported values.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformYouTube, PlatformFacebook, PlatformInstagram, PlatformTwitter:
		return true
	}
	return false
}

// Metrics holds the derived engagement metrics of a profile.
// Pointer fields are nil when the metric has not been computed.
type Metrics struct {
	EngagementRatePerPost *float64 `json:"engagement_rate_per_post"`
	LikeCommentRatio      *float64 `json:"like_comment_ratio"`
	PostFrequencyPerWeek  *float64 `json:"post_frequency_per_week"`
	SentimentScore        *float64 `json:"sentiment_score"`
	OverallScore          *float64 `json:"overall_score"`
	AvgVisualScore        float64  `json:"avg_visual_score"`
}

// PostStats holds per-post statistics as fetched from a platform.
type PostStats struct {
	PostID               string     `json:"post_id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	PublishedAt          *time.Time `json:"published_at"`
	Views                *int       `json:"views"`
	Likes                *int       `json:"likes"`
	CommentsTotal        *int       `json:"comments_total"`
	GoodComments         *int       `json:"good_comments"`
	BadComments          *int       `json:"bad_comments"`
	Category             string     `json:"category,omitempty"`
	ContentBasedCategory string     `json:"content_based_category,omitempty"`

	// Media attributes used by visual analysis.
	ThumbnailURL    string   `json:"thumbnail_url,omitempty"`
	MediaURL        string   `json:"media_url,omitempty"`
	MediaType       string   `json:"media_type,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Transcript      string   `json:"transcript,omitempty"`
	DurationSeconds int      `json:"duration_seconds,omitempty"`
	SpeakingPaceWPM float64  `json:"speaking_pace_wpm,omitempty"`

	DominantColors        []string `json:"dominant_colors,omitempty"`
	VisualStyleTags       []string `json:"visual_style_tags,omitempty"`
	VisualAestheticsScore int      `json:"visual_aesthetics_score,omitempty"`
}

// InfluencerProfile is an aggregated social account snapshot.
type InfluencerProfile struct {
	ID            string      `json:"_id"`
	PlatformID    string      `json:"platform_id"`
	Platform      Platform    `json:"platform"`
	Name          string      `json:"name"`
	Username      string      `json:"username"`
	Bio           string      `json:"bio"`
	ProfilePicURL string      `json:"profile_pic_url"`
	Followers     *int        `json:"followers"`
	Posts         []PostStats `json:"posts"`
	Metrics       *Metrics    `json:"metrics"`
	IsDeleted     bool        `json:"isDeleted"`
	CreatorID     *string     `json:"creator_id"`
	CreatedAt     time.Time   `json:"created_at"`
	LastUpdated   time.Time   `json:"last_updated"`
}
