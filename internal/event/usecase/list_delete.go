package usecase

import (
	"context"
	"strings"

	"calendar-event-backend/internal/event"
	"calendar-event-backend/pkg/gcalendar"
)

// List returns upcoming events from input.From (default now) over the configured window.
func (uc *implUseCase) List(ctx context.Context, input event.ListInput) (out event.ListOutput, err error) {
	started := uc.now()
	defer func() { uc.observe(opList, err, started) }()

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	cal, err := uc.connect(ctx, opList)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List connect: %v", err)
		return event.ListOutput{}, err
	}

	from := input.From
	if from.IsZero() {
		from = started
	}
	req := gcalendar.ListEventsRequest{
		CalendarID: uc.opts.CalendarID,
		TimeMin:    from,
		MaxResults: uc.opts.ListMaxResults,
	}
	if uc.opts.ListWindow > 0 {
		req.TimeMax = from.Add(uc.opts.ListWindow)
	}

	items, err := cal.ListEvents(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListOutput{}, event.NewError(event.KindRemote, opList, err)
	}

	events := make([]event.Event, len(items))
	for i, item := range items {
		events[i] = toDomainEvent(item)
	}
	return event.ListOutput{Events: events}, nil
}

// Delete removes one event from the configured calendar.
func (uc *implUseCase) Delete(ctx context.Context, input event.DeleteInput) (err error) {
	if strings.TrimSpace(input.EventID) == "" {
		return event.NewError(event.KindInput, opDelete, event.ErrMissingEventID)
	}

	started := uc.now()
	defer func() { uc.observe(opDelete, err, started) }()

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	cal, err := uc.connect(ctx, opDelete)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete connect: %v", err)
		return err
	}

	if err := cal.DeleteEvent(ctx, uc.opts.CalendarID, input.EventID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return event.NewError(event.KindRemote, opDelete, err)
	}

	uc.l.Infof(ctx, "uc.Delete: deleted event %s", input.EventID)
	return nil
}
