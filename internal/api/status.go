package api

import (
	"errors"
	"net/http"

	"airline-marketplace/authority/internal/apperrors"
)

// StatusForError maps each service error kind to its distinct, stable HTTP
// status code.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrExhausted):
		return http.StatusServiceUnavailable
	default:
		// ErrInvariantViolation and unexpected failures.
		return http.StatusInternalServerError
	}
}
