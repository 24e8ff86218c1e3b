package http

import (
	"github.com/gin-gonic/gin"

	"calendar-event-backend/pkg/response"
)

// Create godoc
// @Summary     Create a calendar event
// @Description Inserts one event into the configured calendar. Identical requests create distinct events.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Missing start/end or malformed body"
// @Failure     500  {object} response.Resp "Credentials not configured"
// @Failure     502  {object} response.Resp "Calendar provider error"
// @Failure     504  {object} response.Resp "Calendar provider timed out"
// @Router      /add-event [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "event.http.Create processCreateReq: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List upcoming events
// @Description Returns single events of the configured calendar ordered by start time.
// @Tags        Events
// @Produce     json
// @Param       from query string false "Window start (RFC 3339, URL-encode a + offset), default now"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar provider error"
// @Router      /api/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Delete godoc
// @Summary     Delete an event
// @Description Permanently removes an event from the configured calendar.
// @Tags        Events
// @Produce     json
// @Param       eventId path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     502 {object} response.Resp "Calendar provider error"
// @Router      /api/events/{eventId} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, input); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Success(c, "Event deleted successfully")
}
