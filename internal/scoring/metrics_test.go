package scoring

import (
	"testing"
	"time"

	"influencer-srv/internal/model"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestComputeYouTube(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("three video channel", func(t *testing.T) {
		agg := Aggregate{
			Followers: 1000,
			Posts: []model.PostStats{
				{Likes: intPtr(10), CommentsTotal: intPtr(1), PublishedAt: timePtr(base)},
				{Likes: intPtr(20), CommentsTotal: intPtr(2), PublishedAt: timePtr(base.AddDate(0, 0, 7))},
				{Likes: intPtr(30), CommentsTotal: intPtr(3), PublishedAt: timePtr(base.AddDate(0, 0, 14))},
			},
		}

		m := ComputeYouTube(agg)

		if got, want := *m.EngagementRatePerPost, 2.2; got != want {
			t.Errorf("engagement rate mismatch: got %v, want %v", got, want)
		}
		if got, want := *m.LikeCommentRatio, 10.0; got != want {
			t.Errorf("like/comment ratio mismatch: got %v, want %v", got, want)
		}
		if got, want := *m.PostFrequencyPerWeek, 1.5; got != want {
			t.Errorf("post frequency mismatch: got %v, want %v", got, want)
		}
		if got, want := *m.SentimentScore, 50.0; got != want {
			t.Errorf("sentiment mismatch: got %v, want %v", got, want)
		}
		// 0.25*2.2*20 + 0.15*0.2*100 + 0.15*1.5*33.3 + 0.10*50
		if got, want := *m.OverallScore, 26.49; got != want {
			t.Errorf("overall mismatch: got %v, want %v", got, want)
		}
	})

	t.Run("zero comments falls back to raw likes", func(t *testing.T) {
		agg := Aggregate{
			Followers: 100,
			Posts: []model.PostStats{
				{Likes: intPtr(40), CommentsTotal: intPtr(0)},
			},
		}

		m := ComputeYouTube(agg)
		if got, want := *m.LikeCommentRatio, 40.0; got != want {
			t.Errorf("ratio fallback mismatch: got %v, want %v", got, want)
		}
	})

	t.Run("sampled comments drive sentiment", func(t *testing.T) {
		agg := Aggregate{
			Followers: 100,
			Posts: []model.PostStats{
				{Likes: intPtr(10), GoodComments: intPtr(3), BadComments: intPtr(1)},
			},
		}

		m := ComputeYouTube(agg)
		if got, want := *m.SentimentScore, 75.0; got != want {
			t.Errorf("sentiment mismatch: got %v, want %v", got, want)
		}
	})

	t.Run("overall clamped for adversarial ratios", func(t *testing.T) {
		agg := Aggregate{
			Followers: 1,
			Posts: []model.PostStats{
				{Likes: intPtr(1000000), CommentsTotal: intPtr(500000), PublishedAt: timePtr(base)},
				{Likes: intPtr(1000000), CommentsTotal: intPtr(500000), PublishedAt: timePtr(base.AddDate(0, 0, 1))},
			},
		}

		m := ComputeYouTube(agg)
		if *m.OverallScore < 0 || *m.OverallScore > 100 {
			t.Errorf("overall out of range: %v", *m.OverallScore)
		}
	})

	t.Run("no followers yields empty metrics", func(t *testing.T) {
		m := ComputeYouTube(Aggregate{Followers: 0, Posts: []model.PostStats{{}}})
		if m.OverallScore != nil || m.EngagementRatePerPost != nil {
			t.Errorf("expected empty metrics, got %+v", m)
		}
	})

	t.Run("single post has zero frequency", func(t *testing.T) {
		agg := Aggregate{
			Followers: 10,
			Posts:     []model.PostStats{{Likes: intPtr(1), PublishedAt: timePtr(base)}},
		}
		m := ComputeYouTube(agg)
		if got := *m.PostFrequencyPerWeek; got != 0 {
			t.Errorf("frequency should be 0 for a single post, got %v", got)
		}
	})

	t.Run("identical timestamps have zero frequency", func(t *testing.T) {
		agg := Aggregate{
			Followers: 10,
			Posts: []model.PostStats{
				{Likes: intPtr(1), PublishedAt: timePtr(base)},
				{Likes: intPtr(2), PublishedAt: timePtr(base)},
			},
		}
		m := ComputeYouTube(agg)
		if got := *m.PostFrequencyPerWeek; got != 0 {
			t.Errorf("frequency should be 0 for zero-day span, got %v", got)
		}
	})
}

func TestComputeInstagram(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("sentiment estimated from engagement rate", func(t *testing.T) {
		agg := Aggregate{
			Followers: 1000,
			Posts: []model.PostStats{
				{Likes: intPtr(50), CommentsTotal: intPtr(10), PublishedAt: timePtr(base)},
				{Likes: intPtr(70), CommentsTotal: intPtr(10), PublishedAt: timePtr(base.AddDate(0, 0, 7))},
			},
		}

		m := ComputeInstagram(agg)

		// er = ((120+20)/2)/1000*100 = 7
		if got, want := *m.EngagementRatePerPost, 7.0; got != want {
			t.Errorf("engagement rate mismatch: got %v, want %v", got, want)
		}
		// sentiment = min(100, 30 + 7*7) = 79
		if got, want := *m.SentimentScore, 79.0; got != want {
			t.Errorf("sentiment mismatch: got %v, want %v", got, want)
		}
	})

	t.Run("sentiment estimate capped at 100", func(t *testing.T) {
		agg := Aggregate{
			Followers: 10,
			Posts: []model.PostStats{
				{Likes: intPtr(500), CommentsTotal: intPtr(100)},
			},
		}

		m := ComputeInstagram(agg)
		if got := *m.SentimentScore; got != 100 {
			t.Errorf("sentiment should cap at 100, got %v", got)
		}
		if *m.OverallScore < 0 || *m.OverallScore > 100 {
			t.Errorf("overall out of range: %v", *m.OverallScore)
		}
	})

	t.Run("no posts yields empty metrics", func(t *testing.T) {
		m := ComputeInstagram(Aggregate{Followers: 500})
		if m.OverallScore != nil {
			t.Errorf("expected empty metrics, got %+v", m)
		}
	})
}

func TestComputeTwitter(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("basic account", func(t *testing.T) {
		tweets := []Tweet{
			{Likes: 100, Replies: 10, Retweets: 5, CreatedAt: timePtr(base), TextPolarity: 1},
			{Likes: 80, Replies: 9, Retweets: 6, CreatedAt: timePtr(base.AddDate(0, 0, 14)), TextPolarity: -1},
		}

		m := ComputeTwitter(2000, tweets)

		// avg engagement = (180+19+11)/2 = 105, er = 105/2000*100 = 5.25
		if got, want := *m.EngagementRatePerPost, 5.25; got != want {
			t.Errorf("engagement rate mismatch: got %v, want %v", got, want)
		}
		// ratio = 180/(19+1) = 9
		if got, want := *m.LikeCommentRatio, 9.0; got != want {
			t.Errorf("ratio mismatch: got %v, want %v", got, want)
		}
		// mean polarity = 0
		if got, want := *m.SentimentScore, 0.0; got != want {
			t.Errorf("sentiment mismatch: got %v, want %v", got, want)
		}
		// freq = 2/(14/7) = 1
		if got, want := *m.PostFrequencyPerWeek, 1.0; got != want {
			t.Errorf("frequency mismatch: got %v, want %v", got, want)
		}
		// 0.4*5*20 + 0.3*1*50 + 0.3*1*25 = 40 + 15 + 7.5
		if got, want := *m.OverallScore, 62.5; got != want {
			t.Errorf("overall mismatch: got %v, want %v", got, want)
		}
	})

	t.Run("no tweets yields zero metrics", func(t *testing.T) {
		m := ComputeTwitter(5000, nil)
		if m.OverallScore == nil || *m.OverallScore != 0 {
			t.Errorf("expected zero overall, got %+v", m.OverallScore)
		}
	})

	t.Run("zero followers yields zero metrics", func(t *testing.T) {
		m := ComputeTwitter(0, []Tweet{{Likes: 1}})
		if m.EngagementRatePerPost == nil || *m.EngagementRatePerPost != 0 {
			t.Errorf("expected zero engagement rate, got %+v", m.EngagementRatePerPost)
		}
	})
}

func TestRescaleTwitterSentiment(t *testing.T) {
	t.Run("counted replies rescale to [-1,1]", func(t *testing.T) {
		m := &model.Metrics{SentimentScore: ptr(0.12)}
		posts := []model.PostStats{
			{GoodComments: intPtr(3), BadComments: intPtr(1)},
		}

		RescaleTwitterSentiment(m, posts)

		// (3/4)*2 - 1 = 0.5
		if got, want := *m.SentimentScore, 0.5; got != want {
			t.Errorf("rescaled sentiment mismatch: got %v, want %v", got, want)
		}
	})

	t.Run("no sampled replies keeps text polarity", func(t *testing.T) {
		m := &model.Metrics{SentimentScore: ptr(0.12)}

		RescaleTwitterSentiment(m, []model.PostStats{{}})

		if got, want := *m.SentimentScore, 0.12; got != want {
			t.Errorf("sentiment should be unchanged: got %v, want %v", got, want)
		}
	})
}
