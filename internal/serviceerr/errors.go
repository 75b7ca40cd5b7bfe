// Package serviceerr defines the error taxonomy of the login callback
// pipeline. Every externally visible failure carries the user-facing message
// and the HTTP status to respond with; wrapped causes stay server-side.
package serviceerr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeMissingParameter Code = "missing_parameter"
	CodeSessionExpired   Code = "session_expired"
	CodeStateMismatch    Code = "state_mismatch"
	CodeTokenFetch       Code = "token_fetch_failed"
	CodeUserInfoFetch    Code = "userinfo_fetch_failed"
	CodeMissingUsername  Code = "missing_username"
	CodeUnknown          Code = "unknown"
)

type Error struct {
	Code    Code
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}

	return string(e.Code) + ": " + e.Message
}

var (
	ErrMissingParameter = &Error{Code: CodeMissingParameter, Message: "Response is missing code, state or the session cookie.", Status: http.StatusBadRequest}
	ErrSessionExpired   = &Error{Code: CodeSessionExpired, Message: "Session has expired.", Status: http.StatusForbidden}
	ErrStateMismatch    = &Error{Code: CodeStateMismatch, Message: "Incorrect state in response.", Status: http.StatusForbidden}
	ErrTokenFetch       = &Error{Code: CodeTokenFetch, Message: "Fetching token failed.", Status: http.StatusBadRequest}
	ErrUserInfoFetch    = &Error{Code: CodeUserInfoFetch, Message: "Fetching userinfo failed.", Status: http.StatusBadRequest}
	ErrMissingUsername  = &Error{Code: CodeMissingUsername, Message: "Failed to find a username in userinfo from provider.", Status: http.StatusBadRequest}
	ErrUnknown          = &Error{Code: CodeUnknown, Message: "Login failed.", Status: http.StatusInternalServerError}
)

// From extracts the taxonomy error wrapped in err, falling back to
// ErrUnknown so internal failures never leak details to the browser.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return ErrUnknown
}
