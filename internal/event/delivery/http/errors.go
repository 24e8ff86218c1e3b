package http

import (
	"calendar-event-backend/internal/event"
	pkgErrors "calendar-event-backend/pkg/errors"
)

// mapError translates use case errors into HTTP errors from pkg/errors.
// The message is always the underlying failure text.
func (h *handler) mapError(err error) error {
	msg := err.Error()
	switch event.KindOf(err) {
	case event.KindInput:
		return pkgErrors.NewBadRequestError(msg)
	case event.KindConfiguration:
		return pkgErrors.NewInternalError(msg)
	case event.KindTimeout:
		return pkgErrors.NewGatewayTimeoutError(msg)
	default:
		return pkgErrors.NewBadGatewayError(msg)
	}
}
