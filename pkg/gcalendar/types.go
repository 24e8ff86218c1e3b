package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// Start and End are sent to the provider verbatim (ISO-8601 text).
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Start       string
	End         string
	Timezone    string // e.g. "UTC", "America/New_York"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Start       string
	End         string
	Timezone    string
	Status      string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Credentials is the OAuth material used to mint a short-lived access token
// from a long-lived refresh token.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	TokenURL     string
	Scopes       []string
}
