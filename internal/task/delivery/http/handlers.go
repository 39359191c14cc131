package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ayushgupta5924/quickbucks/internal/middleware"
	"github.com/ayushgupta5924/quickbucks/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task from free text (parsed) or explicit fields. Explicit fields win.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.mapError(c, "uc.Create", err)
		return
	}

	response.Created(c, h.newTaskResp(output.Task))
}

// Parse godoc
// @Summary     Preview task extraction
// @Description Runs the language parser over free text without creating anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Free text"
// @Success     200 {object} draftResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    BearerAuth
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.mapError(c, "uc.Parse", err)
		return
	}

	response.OK(c, h.newDraftResp(output.Draft))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of the caller's tasks, newest first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       completed query bool   false "Filter by completion state"
// @Param       category  query string false "Filter by category"
// @Param       limit     query int    false "Page size (default: 20)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    BearerAuth
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.mapError(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a pending task completed and credits its reward to the wallet.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already completed"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id}/complete [PATCH]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Complete(ctx, sc, c.Param("id"))
	if err != nil {
		h.mapError(c, "uc.Complete", err)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.mapError(c, "uc.Delete", err)
		return
	}

	response.OK(c, nil)
}
