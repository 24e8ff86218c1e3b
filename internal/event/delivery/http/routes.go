package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// mw is applied to every route that reaches the calendar provider.
func RegisterRoutes(r gin.IRouter, h Handler, mw ...gin.HandlerFunc) {
	create := append(append([]gin.HandlerFunc{}, mw...), h.Create)
	r.POST("/add-event", create...)

	api := r.Group("/api", mw...)
	{
		api.POST("/create-event", h.Create)
		api.GET("/events", h.List)
		api.DELETE("/events/:eventId", h.Delete)
	}
}
