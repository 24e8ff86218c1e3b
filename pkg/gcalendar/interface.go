package gcalendar

import "context"

// ICalendar defines the calendar operations used by the service.
// Implementations are safe for concurrent use.
type ICalendar interface {
	// CreateEvent inserts exactly one event. It never retries.
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)

	// ListEvents returns single events between TimeMin and TimeMax ordered by start time.
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)

	// DeleteEvent removes one event by id.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Connector yields an authenticated ICalendar.
// Each call re-derives credentials, so nothing is cached between calls.
type Connector interface {
	Connect(ctx context.Context) (ICalendar, error)
}
