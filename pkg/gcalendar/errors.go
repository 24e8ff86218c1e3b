package gcalendar

import "errors"

var (
	// ErrMissingCredential is returned when a piece of Credentials is empty.
	ErrMissingCredential = errors.New("missing google credential")
	// ErrTokenExchange is returned when the refresh token could not be exchanged for an access token.
	ErrTokenExchange = errors.New("failed to exchange refresh token")
	// ErrMalformedResponse is returned when the provider answers without the fields we need.
	ErrMalformedResponse = errors.New("malformed calendar response")
)
