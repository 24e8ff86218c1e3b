package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-event-backend/config"
	_ "calendar-event-backend/docs" // Swagger docs
	"calendar-event-backend/internal/auth"
	eventHTTP "calendar-event-backend/internal/event/delivery/http"
	eventUC "calendar-event-backend/internal/event/usecase"
	"calendar-event-backend/internal/httpserver"
	"calendar-event-backend/internal/middleware"
	"calendar-event-backend/pkg/gcalendar"
	"calendar-event-backend/pkg/log"
	"calendar-event-backend/pkg/metrics"
)

// @title       Calendar Event Backend API
// @description Creates, lists and deletes Google Calendar events using refresh-token credentials.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Event Backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	gc := cfg.GoogleCalendar
	creds := gcalendar.Credentials{
		ClientID:     gc.ClientID,
		ClientSecret: gc.ClientSecret,
		RefreshToken: gc.RefreshToken,
		TokenURL:     gc.TokenURL,
	}
	if err := creds.Validate(); err != nil {
		// Not fatal: every calendar request reports it as a configuration error.
		logger.Warnf(ctx, "Google Calendar credentials incomplete: %v", err)
	} else {
		logger.Infof(ctx, "Google Calendar credentials loaded (refresh token %s)", log.Mask(gc.RefreshToken))
	}

	// 3. Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// 4. Event domain
	connector := gcalendar.NewRefreshTokenConnector(creds)
	var recorder metrics.Recorder
	if m != nil {
		recorder = m
	}
	uc := eventUC.New(logger, connector, recorder, eventUC.Options{
		CalendarID:      gc.CalendarID,
		DefaultSummary:  gc.DefaultSummary,
		DefaultTimezone: gc.DefaultTimezone,
		Timeout:         gc.RequestTimeout,
		ListWindow:      gc.ListWindow,
		ListMaxResults:  gc.ListMaxResults,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.CORS, m, cfg.RateLimit),
		Metrics:         m,
		EventHandler:    eventHTTP.New(logger, uc),
		AuthHandler:     auth.New(logger),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
