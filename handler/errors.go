package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
)

// HTTPError is an error carrying the status code and the message shown to the client.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. An empty message defaults to the status text.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Invalid request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found")
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway, "Upstream service unavailable")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "An error occurred processing your request")
)
