package apperrors

import "errors"

// Sentinel error kinds returned from the service layer. Handlers map each
// kind to a distinct HTTP status; everything else is treated as an internal
// error.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrCapacityExceeded   = errors.New("no available seats")
	ErrInvariantViolation = errors.New("seat count invariant violated")
	ErrExhausted          = errors.New("booking reference generation exhausted")
)

// Kind returns a short label for the sentinel kind err wraps, or "internal".
// Used as the metrics label for ledger failures.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrInvariantViolation):
		return "invariant_violation"
	case errors.Is(err, ErrExhausted):
		return "exhausted"
	default:
		return "internal"
	}
}

// IsKind reports whether err wraps any of the sentinel kinds above.
func IsKind(err error) bool {
	for _, kind := range []error{
		ErrNotFound,
		ErrInvalidArgument,
		ErrAlreadyExists,
		ErrCapacityExceeded,
		ErrInvariantViolation,
		ErrExhausted,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
