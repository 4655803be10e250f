package http

import (
	"net/http"

	"influencer-srv/internal/user"
	"influencer-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Signup - Register a brand or creator account
// @Summary Sign up
// @Description Register a new brand or creator account
// @Tags User
// @Accept json
// @Produce json
// @Param body body signupReq true "Account details"
// @Success 200 {object} signupResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/users/signup [post]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Signup: processSignupRequest failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}

	out, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Signup: usecase Signup failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, signupResp{UserID: out.UserID, UserType: string(out.UserType)})
}

// Login - Authenticate and issue a session token
// @Summary Log in
// @Description Check credentials and return a signed session token
// @Tags User
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Login: processLoginRequest failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, loginResp{Token: out.Token, User: newUserResp(out.User)})
}

// Stats - Headcounts of the registered user base
// @Summary User stats
// @Tags User
// @Produce json
// @Success 200 {object} statsResp
// @Router /api/v1/users/stats [post]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processStatsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Stats: processStatsRequest failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}

	out, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Stats: usecase Stats failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, statsResp{
		TotalCreators: out.TotalCreators,
		TotalBrands:   out.TotalBrands,
		TotalUsers:    out.TotalUsers,
	})
}

// FacebookCallback - OAuth redirect target for the Graph connect flow
// @Summary Facebook OAuth callback
// @Description Exchange the redirect code for a Graph token and connect the account
// @Tags User
// @Produce json
// @Param code query string true "OAuth code"
// @Param state query string true "User id that started the flow"
// @Success 302
// @Failure 400 {object} response.Resp
// @Router /api/v1/oauth/facebook/callback [get]
func (h *handler) FacebookCallback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExchangeCodeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.FacebookCallback: processExchangeCodeRequest failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}

	out, err := h.uc.ExchangeFBCode(ctx, user.ExchangeFBCodeInput{Code: req.Code, State: req.State})
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.FacebookCallback: usecase ExchangeFBCode failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Redirect(http.StatusFound, out.RedirectURL)
}
