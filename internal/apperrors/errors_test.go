package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrNotFound, "not_found"},
		{fmt.Errorf("flight SL1234567: %w", ErrCapacityExceeded), "capacity_exceeded"},
		{ErrInvariantViolation, "invariant_violation"},
		{errors.New("connection reset"), "internal"},
	}
	for _, tc := range cases {
		if got := Kind(tc.err); got != tc.want {
			t.Errorf("Kind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestIsKind(t *testing.T) {
	if !IsKind(fmt.Errorf("booking X: %w", ErrAlreadyExists)) {
		t.Error("Expected wrapped sentinel to be a known kind")
	}
	if IsKind(errors.New("disk full")) {
		t.Error("Expected plain error to not be a known kind")
	}
	if IsKind(nil) {
		t.Error("Expected nil to not be a known kind")
	}
}
