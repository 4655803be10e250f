package http

import (
	"github.com/gin-gonic/gin"

	"influencer-srv/internal/model"
	"influencer-srv/pkg/scope"
)

func (h *handler) processSearchRequest(c *gin.Context) (searchReq, model.Scope, error) {
	ctx := c.Request.Context()

	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "search.delivery.http.processSearchRequest: invalid request: %v", err)
		return searchReq{}, model.Scope{}, errInvalidRequest
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
