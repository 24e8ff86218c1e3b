package http

import (
	"github.com/gin-gonic/gin"

	"calendar-event-backend/internal/event"
	"calendar-event-backend/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc event.UseCase
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
