package core

import "fmt"

// -----------------------------------------------------------------------------
// Error
// -----------------------------------------------------------------------------

// Error is the canonical structured error carried across package boundaries.
// Code is a stable machine-readable identifier; Details holds contextual
// values safe to surface to API consumers.
type Error struct {
	Message string         `json:"message,omitempty"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	err     error
}

func NewError(err error, code string, details map[string]any) *Error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Message: msg,
		Code:    code,
		Details: details,
		err:     err,
	}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.err
}
