package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"airline-marketplace/authority/internal/apperrors"
	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/constants"
	"airline-marketplace/authority/internal/db/repositories"
	"airline-marketplace/authority/internal/models/dtos"
	models "airline-marketplace/authority/internal/models/gorm"
)

// BookingLedger is the slice of the seat ledger the booking handlers need.
type BookingLedger interface {
	CreateBooking(ctx context.Context, flightCode string, passportNumber int64) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingRef string) error
}

// BookingLister is the read side of the booking surface.
type BookingLister interface {
	List(ctx context.Context, filter repositories.BookingFilter) ([]models.Booking, error)
}

// createBookingMessage picks the client-facing message for a rejected
// booking; the raw error still lands in the logs.
func createBookingMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return constants.MsgFlightNotFound
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return constants.MsgDuplicateBooking
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		return constants.MsgFlightSoldOut
	default:
		return ""
	}
}

func cancelBookingMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return constants.MsgBookingNotFound
	case errors.Is(err, apperrors.ErrInvariantViolation):
		return constants.MsgSeatBoundsBroken
	default:
		return ""
	}
}

// CreateBookingHandler handles POST /api/v1/bookings
func CreateBookingHandler(ledger BookingLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.FlightCode == "" {
			common.RespondError(w, initTime, nil, "Flight code is required", http.StatusBadRequest)
			return
		}
		if req.PassportNumber == nil {
			common.RespondError(w, initTime, nil, "Passport number is required", http.StatusBadRequest)
			return
		}

		booking, err := ledger.CreateBooking(r.Context(), req.FlightCode, *req.PassportNumber)
		if err != nil {
			common.RespondError(w, initTime, err, createBookingMessage(err), StatusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Booking created", dtos.BookingResponse{
			BookingRef:     booking.BookingRef,
			PassportNumber: booking.PassportNumber,
			FlightCode:     booking.FlightCode,
		}, http.StatusCreated)
	}
}

// CancelBookingHandler handles DELETE /api/v1/bookings?booking_ref=
func CancelBookingHandler(ledger BookingLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		bookingRef := r.URL.Query().Get("booking_ref")
		if bookingRef == "" {
			common.RespondError(w, initTime, nil, "Booking reference is required", http.StatusBadRequest)
			return
		}

		if err := ledger.CancelBooking(r.Context(), bookingRef); err != nil {
			common.RespondError(w, initTime, err, cancelBookingMessage(err), StatusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Booking cancelled", nil)
	}
}

// ListBookingsHandler handles GET /api/v1/bookings
func ListBookingsHandler(bookings BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter := repositories.BookingFilter{
			BookingRef: r.URL.Query().Get("booking_ref"),
			FlightCode: r.URL.Query().Get("flight_code"),
		}

		list, err := bookings.List(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch bookings", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched bookings", list)
	}
}
