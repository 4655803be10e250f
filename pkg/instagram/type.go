package instagram

import (
	pkghttp "influencer-srv/pkg/http"
)

// DefaultBaseURL is the Facebook Graph API root used for business_discovery.
const DefaultBaseURL = "https://graph.facebook.com/v19.0"

// Config holds the Instagram Graph API client configuration.
type Config struct {
	BaseURL     string
	BusinessID  string
	AccessToken string
}

type igImpl struct {
	cfg        Config
	httpClient pkghttp.IClient
}

// Profile is a business_discovery result.
type Profile struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Name              string  `json:"name"`
	FollowersCount    int     `json:"followers_count"`
	MediaCount        int     `json:"media_count"`
	Biography         string  `json:"biography"`
	ProfilePictureURL string  `json:"profile_picture_url"`
	Media             []Media `json:"-"`
}

// Media is one post of a business_discovery result.
type Media struct {
	ID            string `json:"id"`
	Caption       string `json:"caption"`
	LikeCount     int    `json:"like_count"`
	CommentsCount int    `json:"comments_count"`
	Timestamp     string `json:"timestamp"`
	MediaType     string `json:"media_type"`
	MediaURL      string `json:"media_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
	ViewsCount    int    `json:"views_count"`
}

type discoveryResponse struct {
	BusinessDiscovery *struct {
		Profile
		MediaEdge struct {
			Data []Media `json:"data"`
		} `json:"media"`
	} `json:"business_discovery"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}
