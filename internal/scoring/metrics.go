package scoring

import (
	"sort"
	"time"

	"influencer-srv/internal/model"
)

// ComputeYouTube derives channel metrics from subscriber count and fetched
// videos. Returns empty metrics when there are no followers or no posts.
// Sentiment is the share of sampled comments classified non-negative; it
// defaults to a neutral 50 when no comments were sampled.
func ComputeYouTube(agg Aggregate) *model.Metrics {
	if agg.Followers <= 0 || len(agg.Posts) == 0 {
		return &model.Metrics{}
	}

	var totalLikes, totalComments, totalSampled, totalGood int
	for _, p := range agg.Posts {
		totalLikes += intOrZero(p.Likes)
		totalComments += intOrZero(p.CommentsTotal)
		totalSampled += intOrZero(p.GoodComments) + intOrZero(p.BadComments)
		totalGood += intOrZero(p.GoodComments)
	}

	avgEngagement := float64(totalLikes+totalComments) / float64(len(agg.Posts))
	engagementRate := avgEngagement / float64(agg.Followers) * 100

	ratio := float64(totalLikes)
	if totalComments > 0 {
		ratio = float64(totalLikes) / float64(totalComments)
	}

	frequency := postFrequencyPerWeek(agg.Posts)

	sentiment := 50.0
	if totalSampled > 0 {
		sentiment = float64(totalGood) / float64(totalSampled) * 100
	}

	overall := 0.25*minF(engagementRate, 5)*20 +
		0.15*minF(ratio/50, 1)*100 +
		0.15*minF(frequency, 3)*33.3 +
		0.10*sentiment

	return &model.Metrics{
		EngagementRatePerPost: ptr(round4(engagementRate)),
		LikeCommentRatio:      ptr(round2(ratio)),
		PostFrequencyPerWeek:  ptr(round2(frequency)),
		SentimentScore:        ptr(round2(sentiment)),
		OverallScore:          ptr(round2(clamp(overall, 0, 100))),
		AvgVisualScore:        round2(avgVisualScore(agg.Posts)),
	}
}

// ComputeInstagram derives profile metrics from follower count and fetched
// media. The data source exposes no comment text, so sentiment is an
// estimate derived from the engagement rate, not a measurement.
func ComputeInstagram(agg Aggregate) *model.Metrics {
	if agg.Followers <= 0 || len(agg.Posts) == 0 {
		return &model.Metrics{}
	}

	var totalLikes, totalComments int
	for _, p := range agg.Posts {
		totalLikes += intOrZero(p.Likes)
		totalComments += intOrZero(p.CommentsTotal)
	}

	avgEngagement := float64(totalLikes+totalComments) / float64(len(agg.Posts))
	engagementRate := avgEngagement / float64(agg.Followers) * 100

	ratio := float64(totalLikes)
	if totalComments > 0 {
		ratio = float64(totalLikes) / float64(totalComments)
	}

	frequency := postFrequencyPerWeek(agg.Posts)

	sentiment := minF(100, 30+engagementRate*7)

	// Instagram engagement rates and posting cadence run higher than
	// YouTube's, hence the wider caps.
	overall := 0.25*minF(engagementRate, 10)*10 +
		0.15*minF(ratio/100, 1)*100 +
		0.15*minF(frequency, 7)*14.3 +
		0.10*sentiment

	return &model.Metrics{
		EngagementRatePerPost: ptr(round4(engagementRate)),
		LikeCommentRatio:      ptr(round2(ratio)),
		PostFrequencyPerWeek:  ptr(round2(frequency)),
		SentimentScore:        ptr(round2(sentiment)),
		OverallScore:          ptr(round2(clamp(overall, 0, 100))),
		AvgVisualScore:        round2(avgVisualScore(agg.Posts)),
	}
}

// Tweet is the normalized input for Twitter metrics. TextPolarity is the
// text-polarity of the tweet body in [-1,1], classified by the caller so the
// calculator stays pure.
type Tweet struct {
	Likes        int
	Replies      int
	Retweets     int
	CreatedAt    *time.Time
	TextPolarity float64
}

// ComputeTwitter derives account metrics from follower count and recent
// tweets. Sentiment here is the mean tweet-text polarity in [-1,1]; when
// reply comments were sampled, RescaleTwitterSentiment replaces it with the
// counted good/bad split.
func ComputeTwitter(followers int, tweets []Tweet) *model.Metrics {
	zero := &model.Metrics{
		EngagementRatePerPost: ptr(0),
		LikeCommentRatio:      ptr(0),
		PostFrequencyPerWeek:  ptr(0),
		SentimentScore:        ptr(0),
		OverallScore:          ptr(0),
	}
	if len(tweets) == 0 || followers <= 0 {
		return zero
	}

	var totalLikes, totalReplies, totalRetweets int
	var polaritySum float64
	for _, t := range tweets {
		totalLikes += t.Likes
		totalReplies += t.Replies
		totalRetweets += t.Retweets
		polaritySum += t.TextPolarity
	}

	avgEngagement := float64(totalLikes+totalReplies+totalRetweets) / float64(len(tweets))
	engagementRate := avgEngagement / float64(followers) * 100

	ratio := float64(totalLikes) / float64(totalReplies+1)

	sentiment := polaritySum / float64(len(tweets))

	frequency := tweetFrequencyPerWeek(tweets)

	overall := 0.4*minF(engagementRate, 5)*20 +
		0.3*(sentiment+1)*50 +
		0.3*minF(frequency, 4)*25

	return &model.Metrics{
		EngagementRatePerPost: ptr(round4(engagementRate)),
		LikeCommentRatio:      ptr(round2(ratio)),
		PostFrequencyPerWeek:  ptr(round2(frequency)),
		SentimentScore:        ptr(round2(sentiment)),
		OverallScore:          ptr(round2(clamp(overall, 0, 100))),
	}
}

// RescaleTwitterSentiment upgrades the text-polarity sentiment to a counted
// good/bad reply split rescaled to [-1,1], when any replies were sampled.
// The overall score keeps the value computed from text polarity.
func RescaleTwitterSentiment(m *model.Metrics, posts []model.PostStats) {
	var good, total int
	for _, p := range posts {
		good += intOrZero(p.GoodComments)
		total += intOrZero(p.GoodComments) + intOrZero(p.BadComments)
	}
	if total == 0 {
		return
	}

	m.SentimentScore = ptr(round2(float64(good)/float64(total)*2 - 1))
}

// postFrequencyPerWeek is posts per week over the earliest-to-latest span.
// Zero when fewer than two timestamps or when the span rounds to zero days.
func postFrequencyPerWeek(posts []model.PostStats) float64 {
	var timestamps []time.Time
	for _, p := range posts {
		if p.PublishedAt != nil {
			timestamps = append(timestamps, *p.PublishedAt)
		}
	}
	if len(timestamps) < 2 {
		return 0
	}

	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })
	days := int(timestamps[len(timestamps)-1].Sub(timestamps[0]).Hours() / 24)
	if days <= 0 {
		return 0
	}

	return float64(len(posts)) / (float64(days) / 7)
}

func tweetFrequencyPerWeek(tweets []Tweet) float64 {
	var timestamps []time.Time
	for _, t := range tweets {
		if t.CreatedAt != nil {
			timestamps = append(timestamps, *t.CreatedAt)
		}
	}
	if len(timestamps) < 2 {
		return 0
	}

	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })
	days := int(timestamps[len(timestamps)-1].Sub(timestamps[0]).Hours() / 24)
	if days <= 0 {
		return 0
	}

	return float64(len(tweets)) / (float64(days) / 7)
}

func avgVisualScore(posts []model.PostStats) float64 {
	if len(posts) == 0 {
		return 0
	}
	var sum int
	for _, p := range posts {
		sum += p.VisualAestheticsScore
	}
	return float64(sum) / float64(len(posts))
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
