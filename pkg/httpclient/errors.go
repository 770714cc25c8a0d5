package httpclient

import "fmt"

// RequestError is returned when the backend answers outside the 2xx range.
type RequestError struct {
	StatusCode int
	Body       string
}

// Error returns the response body, or a status based message when the body is empty.
func (e *RequestError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}
