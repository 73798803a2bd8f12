package saga

import (
	"errors"
	"fmt"
	"net/http"
	"ticketing/api"
)

// Error is a saga failure with the HTTP status the orchestrator endpoint
// should answer with.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// propagateStatus keeps the collaborator's own status code when it returned
// one; anything else becomes a 500.
func propagateStatus(err error, message string) *Error {
	var collab *api.CollaboratorError
	if errors.As(err, &collab) && collab.StatusCode >= http.StatusBadRequest {
		return &Error{Status: collab.StatusCode, Message: collab.Message, Err: err}
	}
	return Internal(message, err)
}

// propagateBadRequest passes a store-side 400 through verbatim; every other
// failure becomes a 500 carrying the diagnostic context.
func propagateBadRequest(err error, message string) *Error {
	var collab *api.CollaboratorError
	if errors.As(err, &collab) && collab.StatusCode == http.StatusBadRequest {
		return &Error{Status: http.StatusBadRequest, Message: collab.Message, Err: err}
	}
	return Internal(message, err)
}

func outcomeLabel(err error) string {
	if err == nil {
		return "success"
	}
	var sagaErr *Error
	if errors.As(err, &sagaErr) && sagaErr.Status < http.StatusInternalServerError {
		return "rejected"
	}
	return "failed"
}
