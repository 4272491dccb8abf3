package service

import "net/http"

// Error is a business error with the HTTP status it should map to.
// Handlers unwrap it with errors.As; anything else becomes a 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func errBadRequest(msg string) *Error { return &Error{Status: http.StatusBadRequest, Message: msg} }
func errNotFound(msg string) *Error   { return &Error{Status: http.StatusNotFound, Message: msg} }
func errConflict(msg string) *Error   { return &Error{Status: http.StatusConflict, Message: msg} }
func errUnprocessable(msg string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: msg}
}
