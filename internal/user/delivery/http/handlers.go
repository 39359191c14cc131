package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ayushgupta5924/quickbucks/internal/middleware"
	"github.com/ayushgupta5924/quickbucks/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Description Creates an account and returns a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.mapError(c, "uc.Register", err)
		return
	}

	response.Created(c, h.newAuthResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.mapError(c, "uc.Login", err)
		return
	}

	response.OK(c, h.newAuthResp(output))
}

// Me godoc
// @Summary     Current account
// @Description Returns the caller's profile and wallet balance.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    BearerAuth
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, sc.UserID)
	if err != nil {
		h.mapError(c, "uc.Me", err)
		return
	}

	response.OK(c, h.newUserResp(output.User))
}
