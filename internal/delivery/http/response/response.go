// Package response renders the uniform API envelope.
package response

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response wrapper of the API. Response carries the
// payload on success, null (or an empty list for an empty listing result)
// on failure.
type Envelope struct {
	Success  bool   `json:"success"`
	Response any    `json:"response"`
	Message  string `json:"message,omitempty"`
}

// Success writes a successful envelope.
func Success(c echo.Context, statusCode int, payload any, message string) error {
	return c.JSON(statusCode, Envelope{
		Success:  true,
		Response: payload,
		Message:  message,
	})
}

// Failure writes a failed envelope. The payload is usually nil; the listing
// endpoints pass an empty slice so "no thoughts found" renders as an empty
// array rather than null.
func Failure(c echo.Context, statusCode int, payload any, message string) error {
	return c.JSON(statusCode, Envelope{
		Success:  false,
		Response: payload,
		Message:  message,
	})
}
