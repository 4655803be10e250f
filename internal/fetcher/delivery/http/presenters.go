package http

import (
	"influencer-srv/internal/fetcher"
	"influencer-srv/internal/model"
)

type fetchYouTubeReq struct {
	Category    string `json:"category" binding:"required"`
	TopResult   int    `json:"top_result"`
	VideosLimit int    `json:"videos_limit"`
	Async       bool   `json:"async"`
}

func (r fetchYouTubeReq) toInput() fetcher.YouTubeInput {
	return fetcher.YouTubeInput{
		Query:       r.Category,
		TopResult:   r.TopResult,
		VideosLimit: r.VideosLimit,
	}
}

func (r fetchYouTubeReq) toJob(byCategory bool) fetcher.Job {
	return fetcher.Job{
		Platform:    model.PlatformYouTube,
		Query:       r.Category,
		ByCategory:  byCategory,
		TopResult:   r.TopResult,
		VideosLimit: r.VideosLimit,
	}
}

type fetchInstagramReq struct {
	Username   string `json:"username" binding:"required"`
	PostsLimit int    `json:"posts_limit"`
	Async      bool   `json:"async"`
}

func (r fetchInstagramReq) toInput() fetcher.InstagramInput {
	return fetcher.InstagramInput{
		Username:   r.Username,
		PostsLimit: r.PostsLimit,
	}
}

func (r fetchInstagramReq) toJob() fetcher.Job {
	return fetcher.Job{
		Platform:   model.PlatformInstagram,
		Query:      r.Username,
		PostsLimit: r.PostsLimit,
	}
}

type fetchTwitterReq struct {
	Username string `json:"username" binding:"required"`
	Async    bool   `json:"async"`
}

func (r fetchTwitterReq) toInput() fetcher.TwitterInput {
	return fetcher.TwitterInput{Username: r.Username}
}

func (r fetchTwitterReq) toJob() fetcher.Job {
	return fetcher.Job{
		Platform: model.PlatformTwitter,
		Query:    r.Username,
	}
}

type batchResp struct {
	Message  string                    `json:"message"`
	Count    int                       `json:"count"`
	Profiles []model.InfluencerProfile `json:"data"`
	Failed   []fetcher.ChannelError    `json:"failed,omitempty"`
}

func newBatchResp(out fetcher.BatchOutput) batchResp {
	profiles := out.Profiles
	if profiles == nil {
		profiles = []model.InfluencerProfile{}
	}
	return batchResp{
		Message:  "stored",
		Count:    len(profiles),
		Profiles: profiles,
		Failed:   out.Failed,
	}
}

type profileResp struct {
	Message string                  `json:"message"`
	Profile model.InfluencerProfile `json:"data"`
}

func newProfileResp(profile model.InfluencerProfile) profileResp {
	return profileResp{
		Message: "stored",
		Profile: profile,
	}
}

type queuedResp struct {
	Message string `json:"message"`
}

func newQueuedResp() queuedResp {
	return queuedResp{Message: "queued"}
}
