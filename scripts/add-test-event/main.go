// scripts/add-test-event/main.go
//
// Inserts one test event directly, bypassing the HTTP server. Useful to check
// that the credentials in .env work.
//
// Usage:
//   go run scripts/add-test-event/main.go --start-in 2m --duration 30m

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"calendar-event-backend/config"
	"calendar-event-backend/pkg/gcalendar"
)

func main() {
	app := &cli.App{
		Name:  "add-test-event",
		Usage: "Create a test event in GOOGLE_CALENDAR_ID using the configured refresh token.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "summary", Value: "Test Event from MCP", Usage: "event title"},
			&cli.StringFlag{Name: "description", Value: "This is a test event created by the MCP system.", Usage: "event description"},
			&cli.DurationFlag{Name: "start-in", Value: 2 * time.Minute, Usage: "delay from now until the event starts"},
			&cli.DurationFlag{Name: "duration", Value: 30 * time.Minute, Usage: "event length"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create event:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gc := cfg.GoogleCalendar
	if gc.CalendarID == "" {
		return cli.Exit("Missing required environment variable: GOOGLE_CALENDAR_ID", 1)
	}

	creds := gcalendar.Credentials{
		ClientID:     gc.ClientID,
		ClientSecret: gc.ClientSecret,
		RefreshToken: gc.RefreshToken,
		TokenURL:     gc.TokenURL,
	}

	ctx, cancel := requestContext(c.Context, gc.RequestTimeout)
	defer cancel()

	cal, err := gcalendar.NewRefreshTokenConnector(creds).Connect(ctx)
	if err != nil {
		return err
	}

	start := time.Now().UTC().Add(c.Duration("start-in"))
	event, err := cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  gc.CalendarID,
		Summary:     c.String("summary"),
		Description: c.String("description"),
		Start:       start.Format(time.RFC3339),
		End:         start.Add(c.Duration("duration")).Format(time.RFC3339),
		Timezone:    "UTC",
	})
	if err != nil {
		return err
	}

	fmt.Printf("Event created: %s\n", event.HtmlLink)
	return nil
}

// requestContext bounds the script's calls like the server does; a non-positive timeout means none.
func requestContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
