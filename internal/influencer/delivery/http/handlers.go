package http

import (
	"influencer-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetOne - Get a single influencer profile by id
// @Summary Get influencer profile
// @Description Get one influencer profile by its id
// @Tags Influencer
// @Accept json
// @Produce json
// @Param body body getOneReq true "Profile id"
// @Success 200 {object} profileResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/profiles/get-one [post]
func (h *handler) GetOne(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetOneRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "influencer.delivery.http.GetOne: processGetOneRequest failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}

	profile, err := h.uc.GetByID(ctx, sc, req.ID)
	if err != nil {
		h.l.Errorf(ctx, "influencer.delivery.http.GetOne: usecase GetByID failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newProfileResp(profile))
}

// GetByCreator - List a creator's profiles on one platform
// @Summary List profiles by creator
// @Tags Influencer
// @Accept json
// @Produce json
// @Param body body getByCreatorReq true "Creator and platform"
// @Success 200 {array} profileResp
// @Router /api/v1/profiles/get-by-creator [post]
func (h *handler) GetByCreator(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetByCreatorRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "influencer.delivery.http.GetByCreator: processGetByCreatorRequest failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}

	profiles, err := h.uc.GetByCreator(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "influencer.delivery.http.GetByCreator: usecase GetByCreator failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newProfileListResp(profiles))
}

// TopEngagement - List the platform's highest-engagement profiles
// @Summary Top engagement profiles
// @Tags Influencer
// @Accept json
// @Produce json
// @Param body body topEngagementReq true "Platform and limit"
// @Success 200 {array} profileResp
// @Router /api/v1/profiles/top-engagement [post]
func (h *handler) TopEngagement(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processTopEngagementRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "influencer.delivery.http.TopEngagement: processTopEngagementRequest failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}

	profiles, err := h.uc.TopEngagement(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "influencer.delivery.http.TopEngagement: usecase TopEngagement failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newProfileListResp(profiles))
}

// Delete - Soft-delete a profile
// @Summary Delete influencer profile
// @Tags Influencer
// @Accept json
// @Produce json
// @Param body body deleteReq true "Profile id"
// @Success 200 {object} response.Resp
// @Router /api/v1/profiles/delete [post]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDeleteRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "influencer.delivery.http.Delete: processDeleteRequest failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.ID); err != nil {
		h.l.Errorf(ctx, "influencer.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
