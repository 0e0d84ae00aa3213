package pkg

import (
	"encoding/json"
	"fmt"
)

// AppError is the structured error crossing the HTTP boundary. Nothing is
// allowed to leak past a handler without being converted into one.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Status     string          // provider-facing status, e.g. "refused"
	Remote     json.RawMessage // untouched provider body, for diagnostics
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithRemote attaches the raw provider response body.
func (e *AppError) WithRemote(remote []byte) *AppError {
	if len(remote) > 0 && json.Valid(remote) {
		e.Remote = json.RawMessage(remote)
	} else if len(remote) > 0 {
		quoted, err := json.Marshal(string(remote))
		if err == nil {
			e.Remote = quoted
		}
	}
	return e
}

// WithStatus attaches a provider-facing status string.
func (e *AppError) WithStatus(status string) *AppError {
	e.Status = status
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON error body: a user-facing message plus diagnostic
// fields. Never a stack trace.
type HTTPError struct {
	Error  string          `json:"error"`
	Code   string          `json:"code,omitempty"`
	Status string          `json:"status,omitempty"`
	Remote json.RawMessage `json:"remote,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Error:  e.Message,
		Code:   e.Code,
		Status: e.Status,
		Remote: e.Remote,
	}
}
