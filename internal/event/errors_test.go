package event_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"calendar-event-backend/internal/event"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("provider said no")

	err := event.NewError(event.KindRemote, "insert", cause)
	if err.Error() != "provider said no" {
		t.Errorf("message must be the cause text, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to reach the cause")
	}
	if event.KindOf(fmt.Errorf("outer: %w", err)) != event.KindRemote {
		t.Errorf("expected remote kind through wrapping")
	}

	timeout := event.NewError(event.KindRemote, "insert", fmt.Errorf("post: %w", context.DeadlineExceeded))
	if timeout.Kind != event.KindTimeout {
		t.Errorf("deadline errors must be classified as timeout, got %s", timeout.Kind)
	}

	if event.KindOf(errors.New("plain")) != event.KindRemote {
		t.Errorf("unclassified errors default to remote")
	}
	if event.KindOf(context.DeadlineExceeded) != event.KindTimeout {
		t.Errorf("bare deadline should be timeout")
	}
	if event.KindOf(event.NewError(event.KindInput, "validate", event.ErrMissingStart)) != event.KindInput {
		t.Errorf("expected input kind")
	}
}
