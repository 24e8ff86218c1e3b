package errors

import "net/http"

// HTTPError is an error that knows which status code it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewBadRequestError is a 400 HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewInternalError is a 500 HTTPError.
func NewInternalError(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// NewBadGatewayError is a 502 HTTPError, used when an upstream call fails.
func NewBadGatewayError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadGateway, message)
}

// NewGatewayTimeoutError is a 504 HTTPError, used when an upstream call times out.
func NewGatewayTimeoutError(message string) *HTTPError {
	return NewHTTPError(http.StatusGatewayTimeout, message)
}
