package usecase

import (
	"time"

	"calendar-event-backend/pkg/gcalendar"
	pkgLog "calendar-event-backend/pkg/log"
	"calendar-event-backend/pkg/metrics"
)

// Options carries the read-only settings fixed at process start.
type Options struct {
	CalendarID      string
	DefaultSummary  string
	DefaultTimezone string
	// Timeout bounds the token exchange and the API call together. Zero disables it.
	Timeout        time.Duration
	ListWindow     time.Duration
	ListMaxResults int64
}

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	l         pkgLog.Logger
	connector gcalendar.Connector
	metrics   metrics.Recorder
	opts      Options
	now       func() time.Time
}

// New creates a new event UseCase implementation.
func New(l pkgLog.Logger, connector gcalendar.Connector, recorder metrics.Recorder, opts Options) *implUseCase {
	if recorder == nil {
		recorder = metrics.NewNop()
	}
	if opts.CalendarID == "" {
		opts.CalendarID = gcalendar.PrimaryCalendarID
	}
	return &implUseCase{
		l:         l,
		connector: connector,
		metrics:   recorder,
		opts:      opts,
		now:       time.Now,
	}
}
