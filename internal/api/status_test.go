package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"airline-marketplace/authority/internal/apperrors"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.ErrInvalidArgument, http.StatusBadRequest},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{apperrors.ErrAlreadyExists, http.StatusConflict},
		{apperrors.ErrCapacityExceeded, http.StatusUnprocessableEntity},
		{apperrors.ErrExhausted, http.StatusServiceUnavailable},
		{apperrors.ErrInvariantViolation, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
		// Wrapped sentinels map the same as bare ones.
		{fmt.Errorf("flight SL1234567: %w", apperrors.ErrNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		if got := StatusForError(tc.err); got != tc.want {
			t.Errorf("StatusForError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
