package auth

import (
	"github.com/gin-gonic/gin"

	pkgLog "calendar-event-backend/pkg/log"
)

// Handler serves the placeholder auth endpoints. It is not a security boundary:
// received tokens are acknowledged but never validated.
type Handler interface {
	HandlePing(c *gin.Context)
	HandleToken(c *gin.Context)
}

type handler struct {
	l pkgLog.Logger
}

// New creates a new auth handler
func New(l pkgLog.Logger) Handler {
	return &handler{l: l}
}

// RegisterRoutes registers GET and POST /auth on r.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.GET("/auth", h.HandlePing)
	r.POST("/auth", h.HandleToken)
}
