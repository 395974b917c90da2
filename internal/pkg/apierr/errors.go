// Package apierr carries the error taxonomy of the view layer: upstream
// status errors (with the structured detail the EarnNest API returns),
// local form-validation errors, and provider-exhaustion errors from the
// geocoding helper.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// StatusError is a non-2xx answer from the upstream API
type StatusError struct {
	StatusCode int
	Detail     string
	Fields     []FieldError
}

// FieldError is one entry of a structured validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

// upstreamErrorBody matches the FastAPI error envelope: detail is either a
// plain message or a list of per-field entries with a location path.
type upstreamErrorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type upstreamFieldEntry struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

// FromResponse builds a StatusError from a non-2xx upstream response.
// An unreadable or unexpected body still yields a usable error with the
// status code; decoding is best effort.
func FromResponse(resp *http.Response) error {
	statusErr := &StatusError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return statusErr
	}

	var envelope upstreamErrorBody
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return statusErr
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		statusErr.Detail = detail
		return statusErr
	}

	var entries []upstreamFieldEntry
	if err := json.Unmarshal(envelope.Detail, &entries); err == nil {
		messages := make([]string, 0, len(entries))
		for _, entry := range entries {
			field := ""
			if len(entry.Loc) > 0 {
				// Last element of the location path names the field
				var s string
				if json.Unmarshal(entry.Loc[len(entry.Loc)-1], &s) == nil {
					field = s
				}
			}
			statusErr.Fields = append(statusErr.Fields, FieldError{Field: field, Message: entry.Msg})
			if field != "" {
				messages = append(messages, field+": "+entry.Msg)
			} else {
				messages = append(messages, entry.Msg)
			}
		}
		statusErr.Detail = strings.Join(messages, "; ")
	}

	return statusErr
}

// AsStatusError unwraps err into a StatusError if there is one in the chain
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is an upstream 401
func IsUnauthorized(err error) bool {
	if statusErr, ok := AsStatusError(err); ok {
		return statusErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// ValidationError is a client-side form validation failure, caught before
// any upstream call. The draft stays with the user for correction.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, field+": "+e.Fields[field])
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// AsValidationError unwraps err into a ValidationError if present
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
