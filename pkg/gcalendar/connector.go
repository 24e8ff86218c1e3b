package gcalendar

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Validate reports the first missing piece of credential material.
func (c Credentials) Validate() error {
	switch {
	case c.ClientID == "":
		return fmt.Errorf("%w: client id is not configured", ErrMissingCredential)
	case c.ClientSecret == "":
		return fmt.Errorf("%w: client secret is not configured", ErrMissingCredential)
	case c.RefreshToken == "":
		return fmt.Errorf("%w: refresh token is not configured", ErrMissingCredential)
	case c.TokenURL == "":
		return fmt.Errorf("%w: token url is not configured", ErrMissingCredential)
	}
	return nil
}

func (c Credentials) oauthConfig() *oauth2.Config {
	scopes := c.Scopes
	if len(scopes) == 0 {
		scopes = []string{calendar.CalendarScope}
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Scopes:       scopes,
		Endpoint:     oauth2.Endpoint{TokenURL: c.TokenURL, AuthStyle: oauth2.AuthStyleInParams},
	}
}

// RefreshTokenConnector builds a fresh calendar client for every Connect call
// by exchanging the configured refresh token for an access token.
type RefreshTokenConnector struct {
	creds      Credentials
	baseClient *http.Client
	opts       []option.ClientOption
}

// Ensure RefreshTokenConnector implements Connector
var _ Connector = (*RefreshTokenConnector)(nil)

// ConnectorOption customizes a RefreshTokenConnector.
type ConnectorOption func(*RefreshTokenConnector)

// WithBaseHTTPClient sets the HTTP client used for both the token exchange and the API calls.
func WithBaseHTTPClient(hc *http.Client) ConnectorOption {
	return func(c *RefreshTokenConnector) {
		c.baseClient = hc
	}
}

// WithClientOptions appends Google API client options (e.g. option.WithEndpoint).
func WithClientOptions(opts ...option.ClientOption) ConnectorOption {
	return func(c *RefreshTokenConnector) {
		c.opts = append(c.opts, opts...)
	}
}

// NewRefreshTokenConnector creates a connector. Credentials are validated on Connect, not here.
func NewRefreshTokenConnector(creds Credentials, opts ...ConnectorOption) *RefreshTokenConnector {
	c := &RefreshTokenConnector{creds: creds}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect validates the credentials, performs the token exchange under ctx and
// returns a client whose calls reuse the minted access token.
func (c *RefreshTokenConnector) Connect(ctx context.Context) (ICalendar, error) {
	if err := c.creds.Validate(); err != nil {
		return nil, err
	}

	if c.baseClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.baseClient)
	}

	ts := c.creds.oauthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: c.creds.RefreshToken})
	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}

	return NewClientFromHTTP(ctx, oauth2.NewClient(ctx, ts), c.opts...)
}
