package http

import (
	"influencer-srv/internal/model"
	"influencer-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSignupRequest(c *gin.Context) (signupReq, error) {
	var req signupReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processStatsRequest(c *gin.Context) (model.Scope, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return sc, nil
}

func (h *handler) processExchangeCodeRequest(c *gin.Context) (exchangeCodeReq, error) {
	var req exchangeCodeReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
