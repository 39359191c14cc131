package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ayushgupta5924/quickbucks/internal/middleware"
	"github.com/ayushgupta5924/quickbucks/pkg/response"
)

// Stats godoc
// @Summary     Dashboard statistics
// @Description Returns totals, earnings, success rate and per-category stats.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/analytics/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Insights godoc
// @Summary     Productivity insights
// @Description Returns a ranked, capped list of insights derived from the task history.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} insightsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/analytics/insights [GET]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Insights(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newInsightsResp(output))
}

// Patterns godoc
// @Summary     Productivity patterns
// @Description Returns completion counts per weekday, per category and per time band.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} patternsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/analytics/patterns [GET]
func (h *handler) Patterns(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Patterns(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Patterns: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newPatternsResp(output))
}
