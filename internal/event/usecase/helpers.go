package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"calendar-event-backend/internal/event"
	"calendar-event-backend/pkg/gcalendar"
)

const (
	opCreate = "create"
	opList   = "list"
	opDelete = "delete"

	outcomeSuccess = "success"
)

// withTimeout applies the per-request deadline shared by the token exchange and the API call.
func (uc *implUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.opts.Timeout)
}

// connect derives fresh credentials. Missing secrets are configuration errors,
// a failed exchange is a remote error.
func (uc *implUseCase) connect(ctx context.Context, op string) (gcalendar.ICalendar, error) {
	cal, err := uc.connector.Connect(ctx)
	if err == nil {
		return cal, nil
	}
	if errors.Is(err, gcalendar.ErrMissingCredential) {
		return nil, event.NewError(event.KindConfiguration, op, err)
	}
	return nil, event.NewError(event.KindRemote, op, err)
}

func (uc *implUseCase) observe(op string, err error, started time.Time) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = string(event.KindOf(err))
	}
	uc.metrics.ObserveCalendarCall(op, outcome, uc.now().Sub(started))
}

func (uc *implUseCase) validateCreate(input event.CreateInput) error {
	if strings.TrimSpace(input.Start) == "" {
		return event.NewError(event.KindInput, opCreate, event.ErrMissingStart)
	}
	if strings.TrimSpace(input.End) == "" {
		return event.NewError(event.KindInput, opCreate, event.ErrMissingEnd)
	}
	return nil
}

// buildCreateRequest maps the input onto the provider request, filling defaults.
func (uc *implUseCase) buildCreateRequest(input event.CreateInput) gcalendar.CreateEventRequest {
	return gcalendar.CreateEventRequest{
		CalendarID:  uc.opts.CalendarID,
		Summary:     uc.coalesce(input.Summary, uc.opts.DefaultSummary),
		Description: input.Description,
		Start:       input.Start,
		End:         input.End,
		Timezone:    uc.coalesce(input.Timezone, uc.opts.DefaultTimezone),
	}
}

// coalesce returns newVal unless it is empty.
func (uc *implUseCase) coalesce(newVal, fallback string) string {
	if newVal != "" {
		return newVal
	}
	return fallback
}

func toDomainEvent(e gcalendar.Event) event.Event {
	return event.Event{
		ID:          e.ID,
		Summary:     e.Summary,
		Description: e.Description,
		HTMLLink:    e.HtmlLink,
		Start:       e.Start,
		End:         e.End,
		Timezone:    e.Timezone,
		Status:      e.Status,
	}
}
