package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "calendar-event-backend/pkg/errors"
	pkgLog "calendar-event-backend/pkg/log"
	"calendar-event-backend/pkg/response"
)

const (
	MessageAuthWorking   = "Auth endpoint is working"
	MessageTokenReceived = "Token received"
)

var errMissingToken = errors.New("token is required")

// HandlePing returns a fixed message.
// @Summary Auth placeholder
// @Description Always answers that the auth endpoint is working. Performs no authentication.
// @Tags Auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/auth [get]
func (h *handler) HandlePing(c *gin.Context) {
	response.OK(c, MessageResponse{
		Status:  response.StatusSuccess,
		Message: MessageAuthWorking,
	})
}

// HandleToken logs receipt of a token and acknowledges it. The token is not verified.
// @Summary Receive a token
// @Description Accepts {"token": "..."} and acknowledges receipt without validating it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} response.Resp
// @Router /api/auth [post]
func (h *handler) HandleToken(c *gin.Context) {
	ctx := c.Request.Context()

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestError(fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		response.Error(c, pkgErrors.NewBadRequestError(errMissingToken.Error()))
		return
	}

	h.l.Infof(ctx, "internal.auth.HandleToken: received token %s", pkgLog.Mask(req.Token))

	response.OK(c, MessageResponse{
		Status:  response.StatusSuccess,
		Message: MessageTokenReceived,
	})
}
