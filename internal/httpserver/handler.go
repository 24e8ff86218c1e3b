package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"calendar-event-backend/internal/auth"
	eventHTTP "calendar-event-backend/internal/event/delivery/http"
	"calendar-event-backend/pkg/response"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic))
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.Metrics())
	srv.gin.Use(srv.mw.CORS())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "Middlewares registered (environment: %s)", srv.environment)
}

// recoverPanic logs the panic and answers with a generic 500 body.
func (srv HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	err := fmt.Errorf("panic: %v", recovered)
	srv.l.Errorf(c.Request.Context(), "httpserver.recoverPanic: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.InternalError(c, err)
	c.Abort()
}

// registerSystemRoutes registers routes that never reach the calendar provider.
func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.home)
	srv.gin.GET("/status", srv.statusCheck)
	srv.gin.GET("/api/health", srv.statusCheck)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	eventHTTP.RegisterRoutes(srv.gin, srv.eventHandler, srv.mw.RateLimit())
	srv.l.Infof(ctx, "Event routes registered at POST /add-event and /api/events")

	if srv.authHandler != nil {
		auth.RegisterRoutes(srv.gin.Group("/api"), srv.authHandler)
		srv.l.Infof(ctx, "Auth placeholder routes registered at /api/auth")
	} else {
		srv.l.Infof(ctx, "Auth handler not configured, skipping /api/auth")
	}
}
