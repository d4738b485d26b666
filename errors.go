// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAPIKey is returned by NewClient when the API key carries
	// neither a "test_" nor a "live_" prefix.
	ErrInvalidAPIKey = errors.New("invalid API key")
)

// ErrorType is the category Column assigns to an API error response.
type ErrorType string

const (
	AuthenticationError    ErrorType = "authentication_error"
	BankAccountError       ErrorType = "bank_account_error"
	DashboardError         ErrorType = "dashboard_error"
	EntityError            ErrorType = "entity_error"
	LimitError             ErrorType = "limit_error"
	LoanError              ErrorType = "loan_error"
	RequestValidationError ErrorType = "request_validation_error"
	ServerError            ErrorType = "server_error"
	TransferError          ErrorType = "transfer_error"
)

func (t ErrorType) validate() error {
	switch t {
	case AuthenticationError, BankAccountError, DashboardError, EntityError,
		LimitError, LoanError, RequestValidationError, ServerError, TransferError:
		return nil
	default:
		return fmt.Errorf("ErrorType(%s) is invalid", t)
	}
}

func (t *ErrorType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = ErrorType(strings.ToLower(s))
	if err := t.validate(); err != nil {
		return err
	}
	return nil
}

// ErrorResponse is the JSON body Column returns alongside a non-200 status.
type ErrorResponse struct {
	Type             ErrorType         `json:"type"`
	Code             string            `json:"code"`
	Message          string            `json:"message"`
	DocumentationURL string            `json:"documentation_url"`
	Details          map[string]string `json:"details"`
}

func (r *ErrorResponse) validate() error {
	if r == nil {
		return errors.New("nil ErrorResponse")
	}
	if err := r.Type.validate(); err != nil {
		return err
	}
	var missing []string
	check := func(name, s string) {
		if s == "" {
			missing = append(missing, name)
		}
	}
	check("code", r.Code)
	check("message", r.Message)
	if len(missing) > 0 {
		return fmt.Errorf("missing %s JSON field(s)", strings.Join(missing, ", "))
	}
	return nil
}

// Error is returned whenever Column rejects a request. It carries the parsed
// error body plus the HTTP status and request URL for debugging.
type Error struct {
	Type             ErrorType
	Code             string
	Message          string
	DocumentationURL string
	Details          map[string]string
	StatusCode       int
	URL              string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error calling %s, %s: %s - %v, Server returned status: %d",
		e.URL, e.Type, e.Code, e.Details, e.StatusCode)
}

// DecodeError is returned when a response body doesn't match the shape this
// client expects, e.g. a missing required field or an unrecognized entity
// discriminator. It signals client/server contract drift rather than a
// business error, so callers can alert on it separately.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnexpectedStatusError is returned for status codes a compliant Column server
// never sends. These are protocol-level faults and aren't worth retrying.
type UnexpectedStatusError struct {
	StatusCode int
	URL        string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unhandled status code %d from %s", e.StatusCode, e.URL)
}
