package gcalendar

const (
	// DefaultTokenURL is Google's OAuth 2.0 token endpoint.
	DefaultTokenURL = "https://oauth2.googleapis.com/token"

	// PrimaryCalendarID addresses the authenticated user's primary calendar.
	PrimaryCalendarID = "primary"

	orderByStartTime = "startTime"
)
