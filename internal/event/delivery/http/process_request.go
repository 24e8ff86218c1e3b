package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-event-backend/internal/event"
	pkgErrors "calendar-event-backend/pkg/errors"
)

// processCreateReq binds the create event request body.
// Presence of start/end is checked by the use case so the message stays uniform.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError(fmt.Sprintf("invalid request body: %v", err))
	}
	return req, nil
}

// processListReq parses the optional "from" query parameter (RFC 3339).
// An unencoded "+hh:mm" offset arrives as a space and is restored.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	raw := strings.TrimSpace(c.Query("from"))
	if raw == "" {
		return req, nil
	}

	from, err := time.Parse(time.RFC3339, strings.ReplaceAll(raw, " ", "+"))
	if err != nil {
		return req, pkgErrors.NewBadRequestError(fmt.Sprintf("invalid query: from must be RFC 3339: %v", err))
	}
	req.From = from
	return req, nil
}

// processDeleteReq reads the event id path parameter.
func (h *handler) processDeleteReq(c *gin.Context) (event.DeleteInput, error) {
	id := c.Param("eventId")
	if id == "" {
		return event.DeleteInput{}, pkgErrors.NewBadRequestError(event.ErrMissingEventID.Error())
	}
	return event.DeleteInput{EventID: id}, nil
}
