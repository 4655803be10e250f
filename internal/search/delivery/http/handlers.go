package http

import (
	"github.com/gin-gonic/gin"

	"influencer-srv/pkg/response"
)

// Search - Natural language influencer search
// @Summary Search influencers by natural language query
// @Description Plans the query with an LLM, retrieves candidates and resolves the matched influencer profiles
// @Tags Search
// @Accept json
// @Produce json
// @Param body body searchReq true "Search request"
// @Success 200 {object} searchResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/search-influencers [post]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSearchRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Search(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Search: usecase Search failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// Filter - Whole-object LLM filtering
// @Summary Filter influencers by natural language query
// @Description Sends full candidate objects to the LLM and returns its filtered array
// @Tags Search
// @Accept json
// @Produce json
// @Param body body searchReq true "Search request"
// @Success 200 {object} filterResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/search-influencers-filter [post]
func (h *handler) Filter(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSearchRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Filter(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Filter: usecase Filter failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newFilterResp(output))
}
