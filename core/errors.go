// Package core provides shared types and utilities for the Schematics SDK.
//
// This package contains:
//   - Error types for local validation failures and remote HTTP status codes
//   - The DetailedResponse envelope returned by every operation
//   - Date parsing and transformation utilities
//   - Logging utilities
//
// Error types can be used for type assertions to handle specific error cases:
//
//	resp, err := service.GetWorkspace(ctx, &schematicsv1.GetWorkspaceOptions{WID: id})
//	if err != nil {
//	    var notFound *core.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle 404
//	    }
//	}
package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// ErrMissingParameters is matched by every MissingParametersError via errors.Is.
var ErrMissingParameters = errors.New("missing required parameters")

// MissingParametersError is returned before any request is sent when an
// operation is invoked without one or more of its required parameters.
type MissingParametersError struct {
	Operation string   `json:"operation"`
	Missing   []string `json:"missing"`
}

func (e *MissingParametersError) Error() string {
	msg := ErrMissingParameters.Error()
	if len(e.Missing) > 0 {
		msg += ": " + strings.Join(e.Missing, ", ")
	}
	if e.Operation != "" {
		return e.Operation + ": " + msg
	}
	return msg
}

// Is reports whether target is ErrMissingParameters.
func (e *MissingParametersError) Is(target error) bool {
	return target == ErrMissingParameters
}

// NewMissingParametersError creates a new MissingParametersError.
func NewMissingParametersError(operation string, missing []string) *MissingParametersError {
	return &MissingParametersError{Operation: operation, Missing: missing}
}

// SchematicsError is the base error type for all errors returned by the service.
//
// All specific error types (RateLimitError, NotFoundError, etc.) embed this type.
// The TraceID field can be used for debugging with IBM Cloud support.
type SchematicsError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code,omitempty"`
	TraceID    string `json:"trace,omitempty"`
	Cause      error  `json:"-"`
}

func (e *SchematicsError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

func (e *SchematicsError) Unwrap() error {
	return e.Cause
}

// RateLimitError is returned when the API returns HTTP 429.
type RateLimitError struct {
	SchematicsError
	RetryAfter int `json:"retryAfter,omitempty"` // seconds
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// NewRateLimitError creates a new RateLimitError.
func NewRateLimitError(message string, retryAfter int, traceID string) *RateLimitError {
	if message == "" {
		message = "Rate limited"
	}
	return &RateLimitError{
		SchematicsError: SchematicsError{
			Message:    message,
			StatusCode: http.StatusTooManyRequests,
			TraceID:    traceID,
		},
		RetryAfter: retryAfter,
	}
}

// AuthenticationError is returned when authentication fails (HTTP 401).
type AuthenticationError struct {
	SchematicsError
}

// NewAuthenticationError creates a new AuthenticationError.
func NewAuthenticationError(message string, traceID string) *AuthenticationError {
	return &AuthenticationError{
		SchematicsError: SchematicsError{
			Message:    message,
			StatusCode: http.StatusUnauthorized,
			TraceID:    traceID,
		},
	}
}

// AuthorizationError is returned when authorization fails (HTTP 403).
type AuthorizationError struct {
	SchematicsError
}

// NewAuthorizationError creates a new AuthorizationError.
func NewAuthorizationError(message string, traceID string) *AuthorizationError {
	return &AuthorizationError{
		SchematicsError: SchematicsError{
			Message:    message,
			StatusCode: http.StatusForbidden,
			TraceID:    traceID,
		},
	}
}

// NotFoundError is returned when a resource is not found (HTTP 404).
type NotFoundError struct {
	SchematicsError
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(message string, traceID string) *NotFoundError {
	return &NotFoundError{
		SchematicsError: SchematicsError{
			Message:    message,
			StatusCode: http.StatusNotFound,
			TraceID:    traceID,
		},
	}
}

// ConflictError is returned for HTTP 409, typically when a workspace is locked
// by a running job.
type ConflictError struct {
	SchematicsError
}

// NewConflictError creates a new ConflictError.
func NewConflictError(message string, traceID string) *ConflictError {
	return &ConflictError{
		SchematicsError: SchematicsError{
			Message:    message,
			StatusCode: http.StatusConflict,
			TraceID:    traceID,
		},
	}
}

// ValidationError is returned for bad requests (HTTP 400).
type ValidationError struct {
	SchematicsError
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError represents one entry of the service's error list.
type FieldError struct {
	Code    string `json:"code,omitempty"`
	Target  string `json:"target,omitempty"`
	Message string `json:"message"`
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string, traceID string, errs []FieldError) *ValidationError {
	return &ValidationError{
		SchematicsError: SchematicsError{
			Message:    message,
			StatusCode: http.StatusBadRequest,
			TraceID:    traceID,
		},
		Errors: errs,
	}
}

// TimeoutError is returned when a request times out.
type TimeoutError struct {
	SchematicsError
	TimeoutMs int `json:"timeoutMs"`
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %dms", e.TimeoutMs)
}

// NewTimeoutError creates a new TimeoutError.
func NewTimeoutError(timeoutMs int, cause error) *TimeoutError {
	return &TimeoutError{
		SchematicsError: SchematicsError{
			Message: fmt.Sprintf("Request timed out after %dms", timeoutMs),
			Cause:   cause,
		},
		TimeoutMs: timeoutMs,
	}
}

// ServerError is returned for server errors (HTTP 5xx).
type ServerError struct {
	SchematicsError
}

// NewServerError creates a new ServerError.
func NewServerError(statusCode int, message string, traceID string) *ServerError {
	return &ServerError{
		SchematicsError: SchematicsError{
			Message:    message,
			StatusCode: statusCode,
			TraceID:    traceID,
		},
	}
}

// errorBody covers the error shapes the service emits: IBM Cloud platform
// errors ({"errors":[...],"trace":...}) and Schematics v1 errors
// ({"error":..., "messages":[...], "requestid":...}).
type errorBody struct {
	Message   string       `json:"message"`
	Error     string       `json:"error"`
	Code      string       `json:"code"`
	Trace     string       `json:"trace"`
	RequestID string       `json:"requestid"`
	Errors    []FieldError `json:"errors"`
	Messages  []struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	} `json:"messages"`
}

// ParseErrorResponse parses a non-2xx HTTP response into an appropriate error type.
func ParseErrorResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var body errorBody
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	code := body.Code
	switch {
	case message != "":
	case len(body.Errors) > 0:
		message = body.Errors[0].Message
		if code == "" {
			code = body.Errors[0].Code
		}
	case len(body.Messages) > 0:
		message = body.Messages[0].Message
		if code == "" {
			code = body.Messages[0].ErrorCode
		}
	case body.Error != "":
		message = body.Error
	default:
		message = resp.Status
	}

	traceID := body.Trace
	if traceID == "" {
		traceID = body.RequestID
	}
	if traceID == "" {
		traceID = resp.Header.Get("X-Correlation-Id")
	}

	var err error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		err = NewValidationError(message, traceID, body.Errors)
	case http.StatusUnauthorized:
		err = NewAuthenticationError(message, traceID)
	case http.StatusForbidden:
		err = NewAuthorizationError(message, traceID)
	case http.StatusNotFound:
		err = NewNotFoundError(message, traceID)
	case http.StatusConflict:
		err = NewConflictError(message, traceID)
	case http.StatusTooManyRequests:
		retryAfter := 0
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			retryAfter, _ = strconv.Atoi(ra)
		}
		err = NewRateLimitError(message, retryAfter, traceID)
	default:
		if resp.StatusCode >= 500 {
			err = NewServerError(resp.StatusCode, message, traceID)
		} else {
			err = &SchematicsError{
				Message:    message,
				StatusCode: resp.StatusCode,
				TraceID:    traceID,
			}
		}
	}
	setCode(err, code)
	return err
}

func setCode(err error, code string) {
	if code == "" {
		return
	}
	switch e := err.(type) {
	case *ValidationError:
		e.Code = code
	case *AuthenticationError:
		e.Code = code
	case *AuthorizationError:
		e.Code = code
	case *NotFoundError:
		e.Code = code
	case *ConflictError:
		e.Code = code
	case *RateLimitError:
		e.Code = code
	case *ServerError:
		e.Code = code
	case *SchematicsError:
		e.Code = code
	}
}

// StatusCode extracts the HTTP status code carried by a service error, or 0.
func StatusCode(err error) int {
	var se interface{ status() int }
	if errors.As(err, &se) {
		return se.status()
	}
	return 0
}

func (e *SchematicsError) status() int { return e.StatusCode }

// IsRetryableError returns true if the error should trigger a retry.
func IsRetryableError(err error) bool {
	var (
		rl *RateLimitError
		se *ServerError
		te *TimeoutError
	)
	return errors.As(err, &rl) || errors.As(err, &se) || errors.As(err, &te)
}
