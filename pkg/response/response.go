package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "calendar-event-backend/pkg/errors"
)

// OK sends 200 JSON with data as the body. Presenters embed their own "status" field.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Success sends 200 with a bare success status and message.
func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Resp{
		Status:  StatusSuccess,
		Message: message,
	})
}

// Error sends an error response. The status code comes from a wrapped
// *errors.HTTPError and defaults to 500. The message is always err's text.
func Error(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	message := DefaultErrorMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}

	c.JSON(code, Resp{
		Status:  StatusError,
		Message: message,
	})
}

// InternalError sends 500 internal server error without leaking err.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		Status:  StatusError,
		Message: DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Status:  StatusError,
		Message: "Too many requests",
	})
}
