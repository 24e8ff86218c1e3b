package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-event-backend/internal/auth"
	eventHTTP "calendar-event-backend/internal/event/delivery/http"
	"calendar-event-backend/internal/middleware"
	"calendar-event-backend/pkg/log"
	"calendar-event-backend/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	mw      middleware.Middleware
	metrics *metrics.Metrics

	// Domains
	eventHandler eventHTTP.Handler
	authHandler  auth.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware
	// Metrics is optional; nil disables GET /metrics.
	Metrics *metrics.Metrics

	EventHandler eventHTTP.Handler
	AuthHandler  auth.Handler
}

// New creates a new HTTPServer instance and registers all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		metrics:         cfg.Metrics,
		eventHandler:    cfg.EventHandler,
		authHandler:     cfg.AuthHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventHandler == nil {
		return errors.New("event handler is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
