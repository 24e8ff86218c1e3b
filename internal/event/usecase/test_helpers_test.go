package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"calendar-event-backend/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockCalendar records every request and hands out sequential ids.
type mockCalendar struct {
	mu        sync.Mutex
	creates   []gcalendar.CreateEventRequest
	lists     []gcalendar.ListEventsRequest
	deletes   []string
	createErr error
	listErr   error
	deleteErr error
	events    []gcalendar.Event
	// block makes calls wait for ctx to finish.
	block bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.block {
		<-ctx.Done()
		return nil, fmt.Errorf("insert: %w", ctx.Err())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates = append(m.creates, req)
	if m.createErr != nil {
		return nil, m.createErr
	}
	id := fmt.Sprintf("evt-%d", len(m.creates))
	return &gcalendar.Event{ID: id, HtmlLink: "https://calendar.google.com/" + id}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists = append(m.lists, req)
	return m.events, m.listErr
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, calendarID+"/"+eventID)
	return m.deleteErr
}

// mockConnector counts connects; each connect stands for one token exchange.
type mockConnector struct {
	cal      *mockCalendar
	err      error
	connects int
	deadline time.Time
}

func (m *mockConnector) Connect(ctx context.Context) (gcalendar.ICalendar, error) {
	m.connects++
	m.deadline, _ = ctx.Deadline()
	if m.err != nil {
		return nil, m.err
	}
	return m.cal, nil
}

var errProvider = errors.New("googleapi: Error 400: Bad Request, badRequest")
