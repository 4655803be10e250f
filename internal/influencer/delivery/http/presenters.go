package http

import (
	"time"

	"influencer-srv/internal/influencer"
	"influencer-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type getOneReq struct {
	ID string `json:"id" binding:"required"`
}

type getByCreatorReq struct {
	CreatorID string `json:"creatorId" binding:"required"`
	Platform  string `json:"platform" binding:"required"`
}

func (r getByCreatorReq) toInput() influencer.GetByCreatorInput {
	return influencer.GetByCreatorInput{
		CreatorID: r.CreatorID,
		Platform:  model.Platform(r.Platform),
	}
}

type topEngagementReq struct {
	Platform string `json:"platform" binding:"required"`
	Limit    int    `json:"limit,omitempty"`
}

func (r topEngagementReq) toInput() influencer.TopEngagementInput {
	return influencer.TopEngagementInput{
		Platform: model.Platform(r.Platform),
		Limit:    r.Limit,
	}
}

type deleteReq struct {
	ID string `json:"id" binding:"required"`
}

// =====================================================
// Response DTOs
// =====================================================

type metricsResp struct {
	EngagementRatePerPost *float64 `json:"engagement_rate_per_post"`
	LikeCommentRatio      *float64 `json:"like_comment_ratio"`
	PostFrequencyPerWeek  *float64 `json:"post_frequency_per_week"`
	SentimentScore        *float64 `json:"sentiment_score"`
	OverallScore          *float64 `json:"overall_score"`
	AvgVisualScore        float64  `json:"avg_visual_score"`
}

type postResp struct {
	PostID                string     `json:"post_id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description,omitempty"`
	PublishedAt           *time.Time `json:"published_at"`
	Views                 *int       `json:"views"`
	Likes                 *int       `json:"likes"`
	CommentsTotal         *int       `json:"comments_total"`
	GoodComments          *int       `json:"good_comments"`
	BadComments           *int       `json:"bad_comments"`
	Category              string     `json:"category,omitempty"`
	ContentBasedCategory  string     `json:"content_based_category,omitempty"`
	ThumbnailURL          string     `json:"thumbnail_url,omitempty"`
	MediaURL              string     `json:"media_url,omitempty"`
	MediaType             string     `json:"media_type,omitempty"`
	DominantColors        []string   `json:"dominant_colors,omitempty"`
	VisualStyleTags       []string   `json:"visual_style_tags,omitempty"`
	VisualAestheticsScore int        `json:"visual_aesthetics_score"`
}

type profileResp struct {
	ID            string       `json:"_id"`
	PlatformID    string       `json:"platform_id"`
	Platform      string       `json:"platform"`
	Name          string       `json:"name"`
	Username      string       `json:"username"`
	Bio           string       `json:"bio"`
	ProfilePicURL string       `json:"profile_pic_url"`
	Followers     *int         `json:"followers"`
	Posts         []postResp   `json:"posts"`
	Metrics       *metricsResp `json:"metrics"`
	CreatorID     *string      `json:"creator_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	LastUpdated   time.Time    `json:"last_updated"`
}

func newProfileResp(p model.InfluencerProfile) profileResp {
	resp := profileResp{
		ID:            p.ID,
		PlatformID:    p.PlatformID,
		Platform:      string(p.Platform),
		Name:          p.Name,
		Username:      p.Username,
		Bio:           p.Bio,
		ProfilePicURL: p.ProfilePicURL,
		Followers:     p.Followers,
		Posts:         make([]postResp, 0, len(p.Posts)),
		CreatorID:     p.CreatorID,
		CreatedAt:     p.CreatedAt,
		LastUpdated:   p.LastUpdated,
	}

	for _, post := range p.Posts {
		resp.Posts = append(resp.Posts, postResp{
			PostID:                post.PostID,
			Title:                 post.Title,
			Description:           post.Description,
			PublishedAt:           post.PublishedAt,
			Views:                 post.Views,
			Likes:                 post.Likes,
			CommentsTotal:         post.CommentsTotal,
			GoodComments:          post.GoodComments,
			BadComments:           post.BadComments,
			Category:              post.Category,
			ContentBasedCategory:  post.ContentBasedCategory,
			ThumbnailURL:          post.ThumbnailURL,
			MediaURL:              post.MediaURL,
			MediaType:             post.MediaType,
			DominantColors:        post.DominantColors,
			VisualStyleTags:       post.VisualStyleTags,
			VisualAestheticsScore: post.VisualAestheticsScore,
		})
	}

	if p.Metrics != nil {
		resp.Metrics = &metricsResp{
			EngagementRatePerPost: p.Metrics.EngagementRatePerPost,
			LikeCommentRatio:      p.Metrics.LikeCommentRatio,
			PostFrequencyPerWeek:  p.Metrics.PostFrequencyPerWeek,
			SentimentScore:        p.Metrics.SentimentScore,
			OverallScore:          p.Metrics.OverallScore,
			AvgVisualScore:        p.Metrics.AvgVisualScore,
		}
	}

	return resp
}

func newProfileListResp(profiles []model.InfluencerProfile) []profileResp {
	out := make([]profileResp, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, newProfileResp(p))
	}
	return out
}
