package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidPath is returned when a path does not start with the client's API prefix.
var ErrInvalidPath = errors.New("path outside api prefix")

// NetworkError means the request could not be sent or its response could not be read.
// Context cancellation and deadlines end up here too.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is a response with a non-2xx status. Body holds the decoded JSON payload
// when the backend sent one.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       any
	RawBody    []byte
}

func (e *HTTPError) Error() string {
	if msg := e.message(); msg != "" {
		return fmt.Sprintf("http error: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, msg)
	}
	return fmt.Sprintf("http error: %s %s: status %d", e.Method, e.URL, e.StatusCode)
}

func (e *HTTPError) message() string {
	m, ok := e.Body.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"message", "error", "detail"} {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// ParseError means a 2xx body could not be decoded into the declared shape.
type ParseError struct {
	Method  string
	URL     string
	Err     error
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

// Outcome names the class of err for metrics and logs.
func Outcome(err error) string {
	var (
		netErr   *NetworkError
		httpErr  *HTTPError
		parseErr *ParseError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &httpErr):
		return "http_error"
	case errors.As(err, &parseErr):
		return "parse_error"
	case errors.As(err, &netErr):
		return "network_error"
	default:
		return "error"
	}
}
