package app_error

import (
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

func Validation(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), 400}
}

func Unauthorized(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), 401}
}

func Permission(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), 403}
}

func NotFound(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), 404}
}

func Conflict(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), 409}
}

// State marks an action that is invalid for the entity's current lifecycle
// state (locked event, past deadline).
func State(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), 403}
}

func HTTPStatus(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.status
	}
	return 500
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// Respond maps any error to the {"error": message} envelope. Errors outside
// the taxonomy are treated as internal: logged, surfaced generically.
func Respond(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status == 500 {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(500, gin.H{"error": "internal server error"})
		return
	}
	WithHTTPStatus(c, err, status)
}
