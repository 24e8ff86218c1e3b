package event

import "time"

// --- Event Domain Model ---

// Event is a calendar event as returned by the provider.
type Event struct {
	ID          string
	Summary     string
	Description string
	HTMLLink    string
	Start       string
	End         string
	Timezone    string
	Status      string
}

// --- UseCase Inputs ---

// CreateInput describes the event to create. Empty optional fields fall back to
// the configured defaults; Start and End are passed through verbatim.
type CreateInput struct {
	Summary     string
	Description string
	Start       string
	End         string
	Timezone    string
}

type ListInput struct {
	// From defaults to now.
	From time.Time
}

type DeleteInput struct {
	EventID string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	EventID  string
	HTMLLink string
}

type ListOutput struct {
	Events []Event
}
