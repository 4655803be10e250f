package http

import (
	"github.com/gin-gonic/gin"

	"influencer-srv/internal/model"
	"influencer-srv/pkg/scope"
)

func (h *handler) processFetchYouTubeRequest(c *gin.Context) (fetchYouTubeReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req fetchYouTubeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "fetcher.delivery.http.processFetchYouTubeRequest: invalid request: %v", err)
		return fetchYouTubeReq{}, model.Scope{}, errInvalidRequest
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processFetchInstagramRequest(c *gin.Context) (fetchInstagramReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req fetchInstagramReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "fetcher.delivery.http.processFetchInstagramRequest: invalid request: %v", err)
		return fetchInstagramReq{}, model.Scope{}, errInvalidRequest
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processFetchTwitterRequest(c *gin.Context) (fetchTwitterReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req fetchTwitterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "fetcher.delivery.http.processFetchTwitterRequest: invalid request: %v", err)
		return fetchTwitterReq{}, model.Scope{}, errInvalidRequest
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
