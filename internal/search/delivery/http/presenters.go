package http

import (
	"influencer-srv/internal/model"
	"influencer-srv/internal/search"
)

type searchReq struct {
	Query string `json:"query" binding:"required"`
}

func (r searchReq) toInput() search.SearchInput {
	return search.SearchInput{
		Query: r.Query,
	}
}

type searchResp struct {
	Profiles         []model.InfluencerProfile `json:"profiles"`
	SelectedKeys     []string                  `json:"selectedKeys"`
	Total            int                       `json:"total"`
	CacheHit         bool                      `json:"cacheHit"`
	ProcessingTimeMs int64                     `json:"processingTimeMs"`
}

func (h *handler) newSearchResp(out search.SearchOutput) searchResp {
	profiles := out.Profiles
	if profiles == nil {
		profiles = []model.InfluencerProfile{}
	}
	return searchResp{
		Profiles:         profiles,
		SelectedKeys:     out.SelectedKeys,
		Total:            out.Total,
		CacheHit:         out.CacheHit,
		ProcessingTimeMs: out.ProcessingTimeMs,
	}
}

type filterResp struct {
	Results          []map[string]any `json:"results"`
	Total            int              `json:"total"`
	CacheHit         bool             `json:"cacheHit"`
	ProcessingTimeMs int64            `json:"processingTimeMs"`
}

func (h *handler) newFilterResp(out search.FilterOutput) filterResp {
	results := out.Results
	if results == nil {
		results = []map[string]any{}
	}
	return filterResp{
		Results:          results,
		Total:            out.Total,
		CacheHit:         out.CacheHit,
		ProcessingTimeMs: out.ProcessingTimeMs,
	}
}
