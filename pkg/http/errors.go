package http

import (
	"fmt"
	"net/http"
)

// StatusError is returned when the server answered with a non-2xx status
// and the body was decoded into the error response, if one was given.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}
