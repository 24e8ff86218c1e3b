package usecase

import (
	"context"
	"time"

	"calendar-event-backend/internal/event"
)

// Create inserts one event. There is no retry and no deduplication.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateInput) (out event.CreateOutput, err error) {
	if err := uc.validateCreate(input); err != nil {
		return event.CreateOutput{}, err
	}

	started := uc.now()
	defer func() { uc.observe(opCreate, err, started) }()

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	cal, err := uc.connect(ctx, opCreate)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create connect: %v", err)
		return event.CreateOutput{}, err
	}

	created, err := cal.CreateEvent(ctx, uc.buildCreateRequest(input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateOutput{}, event.NewError(event.KindRemote, opCreate, err)
	}

	uc.l.Infof(ctx, "uc.Create: created event %s in %s", created.ID, uc.now().Sub(started).Round(time.Millisecond))
	return event.CreateOutput{
		EventID:  created.ID,
		HTMLLink: created.HtmlLink,
	}, nil
}
