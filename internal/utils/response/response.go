// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every handler sends JSON back to the client. Rather than repeating the
// same three lines (set header, set status, encode) everywhere, they are
// centralised here — together with the single error-to-status mapping all
// handlers share, so every failure path terminates with an explicit
// response.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
)

// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (a student, a list, a
// token…). Error responses always look like:
//
//	{ "status": "error", "error": "field Names is required" }
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
// Header() → WriteHeader() → body, in that order — once the first body byte
// is written the headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// Error is the single error-to-response mapping used by every handler.
// It classifies the error chain onto an HTTP status:
//
//	storage.ErrNotFound       → 404
//	storage.ErrUsernameTaken  → 409
//	storage.ErrInvalidID      → 400
//	anything else             → 500
//
// Handlers call this instead of choosing statuses ad hoc, so no failure
// path can ever drop a request without a response. (The auth gate maps its
// own failures to 401 before a handler runs.)
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrInvalidID):
		status = http.StatusBadRequest
	}

	WriteJSON(w, status, GeneralError(err))
}

// ValidationError converts validator.ValidationErrors into a single
// human-readable Response, one sentence per failing field.
//
// Example output:
//
//	{ "status": "error", "error": "field Names is required" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}
