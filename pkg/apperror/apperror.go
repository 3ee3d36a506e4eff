package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/resume-portal/pkg/apiclient"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUpstream     = errors.New("upstream unavailable")
	ErrRateLimited  = errors.New("too many requests")
	ErrInternal     = errors.New("internal server error")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

func NewUpstream(details string, err error) *AppError {
	return NewAppError(ErrUpstream, "The resume backend could not be reached", details, err)
}

func NewRateLimited(details string) *AppError {
	return NewAppError(ErrRateLimited, "Too many requests, slow down", details, nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

// Wrap classifies a raw error coming out of a transformer. Backend 404s become
// ErrNotFound, every other backend failure ErrUpstream.
func Wrap(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, ErrInvalidInput) {
		return NewInvalidInput(err.Error(), err)
	}
	if apiclient.IsNotFound(err) {
		return NewAppError(ErrNotFound, "Resource not found", err.Error(), err)
	}
	var (
		netErr   *apiclient.NetworkError
		httpErr  *apiclient.HTTPError
		parseErr *apiclient.ParseError
	)
	if errors.As(err, &netErr) || errors.As(err, &httpErr) || errors.As(err, &parseErr) {
		return NewUpstream(apiclient.Outcome(err), err)
	}
	return NewInternal(err.Error(), err)
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || apiclient.IsNotFound(err) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRateLimited) {
		return http.StatusTooManyRequests
	}
	if errors.Is(err, ErrUpstream) {
		return http.StatusBadGateway
	}
	var (
		netErr   *apiclient.NetworkError
		httpErr  *apiclient.HTTPError
		parseErr *apiclient.ParseError
	)
	if errors.As(err, &netErr) || errors.As(err, &httpErr) || errors.As(err, &parseErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
}
