package twitter

import (
	pkghttp "influencer-srv/pkg/http"
)

// DefaultBaseURL is the Twitter v2 API root.
const DefaultBaseURL = "https://api.twitter.com/2"

// Config holds the Twitter client configuration.
type Config struct {
	BaseURL     string
	BearerToken string
}

type twImpl struct {
	cfg        Config
	httpClient pkghttp.IClient
}

// User is a v2 user lookup result.
type User struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Username        string        `json:"username"`
	Description     string        `json:"description"`
	ProfileImageURL string        `json:"profile_image_url"`
	PublicMetrics   publicMetrics `json:"public_metrics"`
}

// Followers returns the follower count from public metrics.
func (u User) Followers() int {
	return u.PublicMetrics.FollowersCount
}

type publicMetrics struct {
	FollowersCount int `json:"followers_count"`
}

// Tweet is one original tweet with its public metrics.
type Tweet struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	CreatedAt     string       `json:"created_at"`
	PublicMetrics tweetMetrics `json:"public_metrics"`
}

type tweetMetrics struct {
	LikeCount    int `json:"like_count"`
	ReplyCount   int `json:"reply_count"`
	RetweetCount int `json:"retweet_count"`
}

// Likes returns the like count from public metrics.
func (t Tweet) Likes() int { return t.PublicMetrics.LikeCount }

// Replies returns the reply count from public metrics.
func (t Tweet) Replies() int { return t.PublicMetrics.ReplyCount }

// Retweets returns the retweet count from public metrics.
func (t Tweet) Retweets() int { return t.PublicMetrics.RetweetCount }

type userResponse struct {
	Data   *User      `json:"data"`
	Errors []apiError `json:"errors"`
}

type tweetsResponse struct {
	Data   []Tweet    `json:"data"`
	Errors []apiError `json:"errors"`
}

type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
