package http

import (
	"github.com/gin-gonic/gin"

	"influencer-srv/pkg/response"
)

// FetchYouTubeByName - Fetch a YouTube channel by its name
// @Summary Fetch and store a YouTube channel by name
// @Description Searches for the channel, processes its recent uploads and stores the profile. Set async to enqueue instead.
// @Tags Fetcher
// @Accept json
// @Produce json
// @Param body body fetchYouTubeReq true "Fetch request"
// @Success 200 {object} batchResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/fetch-influencer-youtube-channel-name [post]
func (h *handler) FetchYouTubeByName(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processFetchYouTubeRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if req.Async {
		if err := h.uc.Enqueue(ctx, sc, req.toJob(false)); err != nil {
			h.l.Errorf(ctx, "fetcher.delivery.http.FetchYouTubeByName: enqueue failed: %v", err)
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		response.OK(c, newQueuedResp())
		return
	}

	output, err := h.uc.FetchYouTubeByName(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "fetcher.delivery.http.FetchYouTubeByName: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newBatchResp(output))
}

// FetchYouTubeByCategory - Fetch top YouTube channels of a category
// @Summary Fetch and store top YouTube channels of a category
// @Description Searches channels matching the category, processes their recent uploads and stores the profiles. Set async to enqueue instead.
// @Tags Fetcher
// @Accept json
// @Produce json
// @Param body body fetchYouTubeReq true "Fetch request"
// @Success 200 {object} batchResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/fetch-influencer-youtube-category-name [post]
func (h *handler) FetchYouTubeByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processFetchYouTubeRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if req.Async {
		if err := h.uc.Enqueue(ctx, sc, req.toJob(true)); err != nil {
			h.l.Errorf(ctx, "fetcher.delivery.http.FetchYouTubeByCategory: enqueue failed: %v", err)
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		response.OK(c, newQueuedResp())
		return
	}

	output, err := h.uc.FetchYouTubeByCategory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "fetcher.delivery.http.FetchYouTubeByCategory: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newBatchResp(output))
}

// FetchInstagram - Fetch an Instagram business account
// @Summary Fetch and store an Instagram business account
// @Description Resolves the account through business discovery, analyzes its media and stores the profile. Set async to enqueue instead.
// @Tags Fetcher
// @Accept json
// @Produce json
// @Param body body fetchInstagramReq true "Fetch request"
// @Success 200 {object} profileResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/fetch-influencer-instagram [post]
func (h *handler) FetchInstagram(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processFetchInstagramRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if req.Async {
		if err := h.uc.Enqueue(ctx, sc, req.toJob()); err != nil {
			h.l.Errorf(ctx, "fetcher.delivery.http.FetchInstagram: enqueue failed: %v", err)
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		response.OK(c, newQueuedResp())
		return
	}

	profile, err := h.uc.FetchInstagram(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "fetcher.delivery.http.FetchInstagram: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newProfileResp(profile))
}

// FetchTwitter - Fetch a Twitter user
// @Summary Fetch and store a Twitter user
// @Description Fetches the user with recent original tweets, analyzes them and stores the profile. Set async to enqueue instead.
// @Tags Fetcher
// @Accept json
// @Produce json
// @Param body body fetchTwitterReq true "Fetch request"
// @Success 200 {object} profileResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/fetch-influencer-twitter [post]
func (h *handler) FetchTwitter(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processFetchTwitterRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if req.Async {
		if err := h.uc.Enqueue(ctx, sc, req.toJob()); err != nil {
			h.l.Errorf(ctx, "fetcher.delivery.http.FetchTwitter: enqueue failed: %v", err)
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		response.OK(c, newQueuedResp())
		return
	}

	profile, err := h.uc.FetchTwitter(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "fetcher.delivery.http.FetchTwitter: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newProfileResp(profile))
}
