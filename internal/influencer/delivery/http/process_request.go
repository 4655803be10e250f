package http

import (
	"influencer-srv/internal/model"
	"influencer-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetOneRequest(c *gin.Context) (getOneReq, model.Scope, error) {
	var req getOneReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetByCreatorRequest(c *gin.Context) (getByCreatorReq, model.Scope, error) {
	var req getByCreatorReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processTopEngagementRequest(c *gin.Context) (topEngagementReq, model.Scope, error) {
	var req topEngagementReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDeleteRequest(c *gin.Context) (deleteReq, model.Scope, error) {
	var req deleteReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
