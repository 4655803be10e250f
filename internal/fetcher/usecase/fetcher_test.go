package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"influencer-srv/internal/fetcher"
	"influencer-srv/internal/influencer"
	"influencer-srv/internal/model"
	"influencer-srv/pkg/instagram"
	"influencer-srv/pkg/log"
	"influencer-srv/pkg/twitter"
	"influencer-srv/pkg/youtube"
)

type fakeYouTube struct {
	channelIDs []string
	searchErr  error
	channels   map[string]youtube.Channel
	channelErr map[string]error
	playlist   map[string][]string
	videos     map[string]youtube.Video
	categories map[string]string
	comments   map[string][]string
}

func (f *fakeYouTube) SearchChannels(_ context.Context, _ string, _ int64) ([]string, error) {
	return f.channelIDs, f.searchErr
}

func (f *fakeYouTube) Channel(_ context.Context, id string) (youtube.Channel, error) {
	if err := f.channelErr[id]; err != nil {
		return youtube.Channel{}, err
	}
	return f.channels[id], nil
}

func (f *fakeYouTube) PlaylistVideoIDs(_ context.Context, playlistID string, _ int64) ([]string, error) {
	return f.playlist[playlistID], nil
}

func (f *fakeYouTube) Videos(_ context.Context, ids []string) ([]youtube.Video, error) {
	videos := make([]youtube.Video, 0, len(ids))
	for _, id := range ids {
		videos = append(videos, f.videos[id])
	}
	return videos, nil
}

func (f *fakeYouTube) CategoryMap(_ context.Context) (map[string]string, error) {
	return f.categories, nil
}

func (f *fakeYouTube) Comments(_ context.Context, videoID string, _ int64) ([]string, error) {
	return f.comments[videoID], nil
}

type fakeTwitter struct {
	user      twitter.User
	userErr   error
	tweets    []twitter.Tweet
	replies   map[string][]string
	replyReqs []string
}

func (f *fakeTwitter) UserByUsername(_ context.Context, _ string) (twitter.User, error) {
	return f.user, f.userErr
}

func (f *fakeTwitter) RecentTweets(_ context.Context, _ string, _ int) ([]twitter.Tweet, error) {
	return f.tweets, nil
}

func (f *fakeTwitter) Replies(_ context.Context, tweetID string, _ int) ([]string, error) {
	f.replyReqs = append(f.replyReqs, tweetID)
	return f.replies[tweetID], nil
}

type fakeColors struct {
	byBody map[string][]string
}

func (f *fakeColors) Dominant(imageBytes []byte, _ int) ([]string, error) {
	if c, ok := f.byBody[string(imageBytes)]; ok {
		return c, nil
	}
	return nil, errors.New("undecodable")
}

type fakeAnalyzer struct{}

// Positive unless the text mentions "bad".
func (fakeAnalyzer) IsPositive(text string) bool {
	return !strings.Contains(strings.ToLower(text), "bad")
}

func (f fakeAnalyzer) Polarity(text string) float64 {
	if f.IsPositive(text) {
		return 1
	}
	return -1
}

type fakeHTTPClient struct{}

// Get serves the URL path back as the body so fakes can key off it.
func (fakeHTTPClient) Get(_ context.Context, url string, _ map[string]string) ([]byte, int, error) {
	return []byte(url), 200, nil
}

func (fakeHTTPClient) Post(_ context.Context, _ string, _ interface{}, _ map[string]string) ([]byte, int, error) {
	return nil, 200, nil
}

type fakeInfluencerUC struct {
	saved []model.InfluencerProfile
	err   error
}

func (f *fakeInfluencerUC) Upsert(_ context.Context, input influencer.UpsertInput) (model.InfluencerProfile, error) {
	if f.err != nil {
		return model.InfluencerProfile{}, f.err
	}
	f.saved = append(f.saved, input.Profile)
	return input.Profile, nil
}

func (f *fakeInfluencerUC) GetByID(_ context.Context, _ model.Scope, _ string) (model.InfluencerProfile, error) {
	return model.InfluencerProfile{}, nil
}

func (f *fakeInfluencerUC) GetByCreator(_ context.Context, _ model.Scope, _ influencer.GetByCreatorInput) ([]model.InfluencerProfile, error) {
	return nil, nil
}

func (f *fakeInfluencerUC) TopEngagement(_ context.Context, _ model.Scope, _ influencer.TopEngagementInput) ([]model.InfluencerProfile, error) {
	return nil, nil
}

func (f *fakeInfluencerUC) Delete(_ context.Context, _ model.Scope, _ string) error {
	return nil
}

type fakeProducer struct {
	keys     [][]byte
	payloads [][]byte
	err      error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.payloads = append(f.payloads, value)
	return nil
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func ts(s string) *time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return &t
}

func newYouTubeFixture() *fakeYouTube {
	return &fakeYouTube{
		channelIDs: []string{"UCaaa"},
		channels: map[string]youtube.Channel{
			"UCaaa": {
				ID:              "UCaaa",
				Title:           "Tech Channel",
				Description:     "daily tech reviews",
				Subscribers:     1000,
				ProfilePicURL:   "http://img/avatar",
				UploadsPlaylist: "UUaaa",
			},
		},
		playlist: map[string][]string{"UUaaa": {"v1", "v2"}},
		videos: map[string]youtube.Video{
			"v1": {
				ID: "v1", Title: "4k gadget review", Description: "unboxing the new phone",
				PublishedAt: ts("2024-01-01T00:00:00Z"), Tags: []string{"tech"},
				CategoryID: "28", ThumbnailURL: "http://img/v1", Duration: "PT10M",
				Views: 500, Likes: 40, Comments: 10,
			},
			"v2": {
				ID: "v2", Title: "vlog", Description: "my day",
				PublishedAt: ts("2024-01-15T00:00:00Z"),
				CategoryID:  "22", ThumbnailURL: "http://img/v2", Duration: "PT2M",
				Views: 100, Likes: 4, Comments: 2,
			},
		},
		categories: map[string]string{"28": "Science & Technology", "22": "People & Blogs"},
		comments: map[string][]string{
			"v1": {"great video", "bad audio", "love it"},
		},
	}
}

func newTestFetcher(yt *fakeYouTube, tw *fakeTwitter, infUC *fakeInfluencerUC, producer *fakeProducer) fetcher.UseCase {
	return New(
		yt,
		nil,
		tw,
		&fakeColors{byBody: map[string][]string{
			"http://img/v1": {"#111111", "#222222", "#333333"},
		}},
		fakeAnalyzer{},
		nil,
		fakeHTTPClient{},
		infUC,
		producer,
		log.Init(log.ZapConfig{Level: "fatal"}),
		Config{VisualWorkers: 2},
	)
}

func TestFetchYouTubeByName(t *testing.T) {
	t.Run("stores a profile with posts in upload order", func(t *testing.T) {
		yt := newYouTubeFixture()
		infUC := &fakeInfluencerUC{}
		uc := newTestFetcher(yt, nil, infUC, nil)

		out, err := uc.FetchYouTubeByName(context.Background(), model.Scope{UserID: "u1"}, fetcher.YouTubeInput{Query: "Tech Channel"})
		if err != nil {
			t.Fatalf("FetchYouTubeByName() error = %v", err)
		}
		if len(out.Profiles) != 1 || len(out.Failed) != 0 {
			t.Fatalf("batch = %+v, want 1 profile, 0 failed", out)
		}

		p := out.Profiles[0]
		if p.Platform != model.PlatformYouTube || p.PlatformID != "UCaaa" {
			t.Errorf("profile identity = %s/%s", p.Platform, p.PlatformID)
		}
		if len(p.Posts) != 2 || p.Posts[0].PostID != "v1" || p.Posts[1].PostID != "v2" {
			t.Fatalf("posts = %+v, want v1 then v2", p.Posts)
		}
		if p.CreatorID == nil || *p.CreatorID != "u1" {
			t.Errorf("creator = %v, want u1", p.CreatorID)
		}

		v1 := p.Posts[0]
		if *v1.GoodComments != 2 || *v1.BadComments != 1 {
			t.Errorf("v1 sentiment = %d/%d, want 2/1", *v1.GoodComments, *v1.BadComments)
		}
		if v1.Category != "Science & Technology" {
			t.Errorf("v1 category = %q", v1.Category)
		}
		if v1.ContentBasedCategory != "Tech" {
			t.Errorf("v1 content category = %q", v1.ContentBasedCategory)
		}
		if v1.DurationSeconds != 600 {
			t.Errorf("v1 duration = %d, want 600", v1.DurationSeconds)
		}
		if len(v1.DominantColors) != 3 {
			t.Errorf("v1 colors = %v, want 3 entries", v1.DominantColors)
		}

		// v2's thumbnail is not decodable; visual data degrades to empty.
		if len(p.Posts[1].DominantColors) != 0 {
			t.Errorf("v2 colors = %v, want none", p.Posts[1].DominantColors)
		}

		if p.Metrics == nil || p.Metrics.EngagementRatePerPost == nil {
			t.Fatalf("metrics missing: %+v", p.Metrics)
		}
		// (40+10+4+2)/2 videos / 1000 subs * 100 = 2.8
		if got := *p.Metrics.EngagementRatePerPost; got != 2.8 {
			t.Errorf("engagement rate = %v, want 2.8", got)
		}
	})

	t.Run("unknown channel name is an error", func(t *testing.T) {
		yt := newYouTubeFixture()
		yt.channelIDs = nil
		uc := newTestFetcher(yt, nil, &fakeInfluencerUC{}, nil)

		_, err := uc.FetchYouTubeByName(context.Background(), model.Scope{}, fetcher.YouTubeInput{Query: "nobody"})
		if !errors.Is(err, fetcher.ErrChannelNotFound) {
			t.Errorf("error = %v, want ErrChannelNotFound", err)
		}
	})

	t.Run("category search with no channels is an empty batch", func(t *testing.T) {
		yt := newYouTubeFixture()
		yt.channelIDs = nil
		uc := newTestFetcher(yt, nil, &fakeInfluencerUC{}, nil)

		out, err := uc.FetchYouTubeByCategory(context.Background(), model.Scope{}, fetcher.YouTubeInput{Query: "underwater basket weaving"})
		if err != nil {
			t.Fatalf("FetchYouTubeByCategory() error = %v", err)
		}
		if len(out.Profiles) != 0 {
			t.Errorf("profiles = %v, want none", out.Profiles)
		}
	})

	t.Run("one failing channel does not abort the batch", func(t *testing.T) {
		yt := newYouTubeFixture()
		yt.channelIDs = []string{"UCbroken", "UCaaa"}
		yt.channelErr = map[string]error{"UCbroken": errors.New("quota exceeded")}
		uc := newTestFetcher(yt, nil, &fakeInfluencerUC{}, nil)

		out, err := uc.FetchYouTubeByCategory(context.Background(), model.Scope{}, fetcher.YouTubeInput{Query: "tech", TopResult: 2})
		if err != nil {
			t.Fatalf("FetchYouTubeByCategory() error = %v", err)
		}
		if len(out.Profiles) != 1 || len(out.Failed) != 1 {
			t.Fatalf("batch = %+v, want 1 profile and 1 failure", out)
		}
		if out.Failed[0].ChannelID != "UCbroken" {
			t.Errorf("failed channel = %q", out.Failed[0].ChannelID)
		}
	})

	t.Run("store failure fails the channel", func(t *testing.T) {
		yt := newYouTubeFixture()
		infUC := &fakeInfluencerUC{err: errors.New("db down")}
		uc := newTestFetcher(yt, nil, infUC, nil)

		out, err := uc.FetchYouTubeByName(context.Background(), model.Scope{}, fetcher.YouTubeInput{Query: "Tech Channel"})
		if err != nil {
			t.Fatalf("FetchYouTubeByName() error = %v", err)
		}
		if len(out.Failed) != 1 {
			t.Fatalf("failed = %v, want 1 entry", out.Failed)
		}
	})
}

type fakeInstagram struct {
	profile instagram.Profile
	err     error
}

func (f *fakeInstagram) BusinessDiscovery(_ context.Context, _ string, _ int) (instagram.Profile, error) {
	return f.profile, f.err
}

func TestFetchInstagram(t *testing.T) {
	ig := &fakeInstagram{
		profile: instagram.Profile{
			ID:                "17841",
			Username:          "travelgram",
			Name:              "Travel Gram",
			FollowersCount:    2000,
			Biography:         "wandering with a camera",
			ProfilePictureURL: "http://img/profile",
			Media: []instagram.Media{
				{
					ID: "m1", Caption: "cinematic sunset vibe", LikeCount: 100, CommentsCount: 10,
					Timestamp: "2024-03-01T10:00:00+0000", MediaType: "VIDEO",
					MediaURL: "http://img/v1", ViewsCount: 3000,
				},
				{
					ID: "m2", Caption: "photo dump", LikeCount: 40, CommentsCount: 4,
					Timestamp: "2024-03-08T10:00:00+0000", MediaType: "IMAGE",
					MediaURL: "http://img/m2",
				},
			},
		},
	}

	infUC := &fakeInfluencerUC{}
	uc := New(
		newYouTubeFixture(),
		ig,
		nil,
		&fakeColors{byBody: map[string][]string{
			"http://img/v1": {"#101010", "#202020", "#303030", "#404040", "#505050"},
		}},
		fakeAnalyzer{},
		nil,
		fakeHTTPClient{},
		infUC,
		nil,
		log.Init(log.ZapConfig{Level: "fatal"}),
		Config{VisualWorkers: 2},
	)

	profile, err := uc.FetchInstagram(context.Background(), model.Scope{}, fetcher.InstagramInput{Username: "travelgram"})
	if err != nil {
		t.Fatalf("FetchInstagram() error = %v", err)
	}

	if profile.Platform != model.PlatformInstagram || profile.PlatformID != "17841" {
		t.Errorf("profile identity = %s/%s", profile.Platform, profile.PlatformID)
	}
	if len(profile.Posts) != 2 {
		t.Fatalf("posts = %d, want 2", len(profile.Posts))
	}

	m1, m2 := profile.Posts[0], profile.Posts[1]
	if m1.Views == nil || *m1.Views != 3000 {
		t.Errorf("video views = %v, want 3000", m1.Views)
	}
	if m2.Views != nil {
		t.Errorf("image views = %v, want nil", m2.Views)
	}
	if m1.PublishedAt == nil || m1.PublishedAt.Day() != 1 {
		t.Errorf("m1 published_at = %v", m1.PublishedAt)
	}
	// cinematic(20) + vibe(0 in image table) tags capped, plus 5 colors (50).
	if m1.VisualAestheticsScore != 70 {
		t.Errorf("m1 visual score = %d, want 70", m1.VisualAestheticsScore)
	}

	if profile.Metrics == nil || profile.Metrics.EngagementRatePerPost == nil {
		t.Fatalf("metrics missing: %+v", profile.Metrics)
	}
	// (140+14)/2 = 77 per post, /2000 followers * 100 = 3.85
	if got := *profile.Metrics.EngagementRatePerPost; got != 3.85 {
		t.Errorf("engagement rate = %v, want 3.85", got)
	}
}

func TestFetchTwitter(t *testing.T) {
	tw := &fakeTwitter{
		user: twitter.User{ID: "42", Name: "Dev", Username: "dev", Description: "writes code"},
		tweets: []twitter.Tweet{
			{ID: "t1", Text: "shipping new ai tool", CreatedAt: "2024-02-08T00:00:00.000Z"},
			{ID: "t2", Text: "bad day honestly", CreatedAt: "2024-02-01T00:00:00.000Z"},
		},
		replies: map[string][]string{
			"t1": {"nice", "bad take", "great", "awesome"},
		},
	}
	tw.user.PublicMetrics.FollowersCount = 1000
	tw.tweets[0].PublicMetrics.LikeCount = 50
	tw.tweets[0].PublicMetrics.ReplyCount = 4
	tw.tweets[1].PublicMetrics.LikeCount = 10
	tw.tweets[1].PublicMetrics.ReplyCount = 1

	infUC := &fakeInfluencerUC{}
	uc := newTestFetcher(newYouTubeFixture(), tw, infUC, nil)

	profile, err := uc.FetchTwitter(context.Background(), model.Scope{}, fetcher.TwitterInput{Username: "dev"})
	if err != nil {
		t.Fatalf("FetchTwitter() error = %v", err)
	}

	if len(tw.replyReqs) != 1 || tw.replyReqs[0] != "t1" {
		t.Errorf("reply lookups = %v, want only the newest tweet", tw.replyReqs)
	}
	if len(profile.Posts) != 2 {
		t.Fatalf("posts = %d, want 2", len(profile.Posts))
	}
	if *profile.Posts[0].GoodComments != 3 || *profile.Posts[0].BadComments != 1 {
		t.Errorf("t1 sentiment = %d/%d, want 3/1", *profile.Posts[0].GoodComments, *profile.Posts[0].BadComments)
	}
	if *profile.Posts[1].GoodComments != 0 || *profile.Posts[1].BadComments != 0 {
		t.Errorf("t2 sentiment sampled, want untouched")
	}
	if profile.Posts[1].ContentBasedCategory != "Lifestyle & Opinion" {
		t.Errorf("t2 content category = %q", profile.Posts[1].ContentBasedCategory)
	}

	// 4 classified replies, 3 positive: (3/4)*2-1 = 0.5 replaces the
	// text-polarity sentiment after the overall score is fixed.
	if profile.Metrics == nil || profile.Metrics.SentimentScore == nil {
		t.Fatalf("metrics missing: %+v", profile.Metrics)
	}
	if got := *profile.Metrics.SentimentScore; got != 0.5 {
		t.Errorf("sentiment = %v, want 0.5", got)
	}
}

func TestFetchTwitter_UserNotFound(t *testing.T) {
	tw := &fakeTwitter{userErr: twitter.ErrUserNotFound}
	uc := newTestFetcher(newYouTubeFixture(), tw, &fakeInfluencerUC{}, nil)

	_, err := uc.FetchTwitter(context.Background(), model.Scope{}, fetcher.TwitterInput{Username: "ghost"})
	if !errors.Is(err, fetcher.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestEnqueueAndRun(t *testing.T) {
	t.Run("job round trips through the queue payload", func(t *testing.T) {
		producer := &fakeProducer{}
		uc := newTestFetcher(newYouTubeFixture(), nil, &fakeInfluencerUC{}, producer)

		job := fetcher.Job{
			Platform:    model.PlatformYouTube,
			Query:       "Tech Channel",
			VideosLimit: 5,
		}
		if err := uc.Enqueue(context.Background(), model.Scope{UserID: "u1"}, job); err != nil {
			t.Fatalf("Enqueue() error = %v", err)
		}
		if len(producer.payloads) != 1 {
			t.Fatalf("published %d messages, want 1", len(producer.payloads))
		}

		var decoded fetcher.Job
		if err := json.Unmarshal(producer.payloads[0], &decoded); err != nil {
			t.Fatalf("payload is not a job: %v", err)
		}
		if decoded.CreatorID != "u1" {
			t.Errorf("creator = %q, want scope user", decoded.CreatorID)
		}

		infUC := &fakeInfluencerUC{}
		runner := newTestFetcher(newYouTubeFixture(), nil, infUC, nil)
		if err := runner.Run(context.Background(), decoded); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if len(infUC.saved) != 1 {
			t.Fatalf("saved %d profiles, want 1", len(infUC.saved))
		}
		if infUC.saved[0].CreatorID == nil || *infUC.saved[0].CreatorID != "u1" {
			t.Errorf("run did not carry the enqueuing creator")
		}
	})

	t.Run("invalid platform is rejected", func(t *testing.T) {
		producer := &fakeProducer{}
		uc := newTestFetcher(newYouTubeFixture(), nil, &fakeInfluencerUC{}, producer)

		err := uc.Enqueue(context.Background(), model.Scope{}, fetcher.Job{Platform: "myspace", Query: "x"})
		if !errors.Is(err, fetcher.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
		if err := uc.Run(context.Background(), fetcher.Job{Platform: "myspace"}); !errors.Is(err, fetcher.ErrInvalidInput) {
			t.Errorf("Run error = %v, want ErrInvalidInput", err)
		}
	})
}
