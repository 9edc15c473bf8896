package repositories

import (
	"context"
	"errors"

	"airline-marketplace/authority/internal/apperrors"
	models "airline-marketplace/authority/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	BookingRef string
	FlightCode string
}

// BookingRepository handles booking table reads for the query surface.
// Seat-mutating writes go through the ledger service's transaction instead.
type BookingRepository struct {
	db *gormlib.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gormlib.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// List returns bookings matching the filter.
func (r *BookingRepository) List(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if filter.BookingRef != "" {
		q = q.Where("UPPER(booking_ref) = UPPER(?)", filter.BookingRef)
	}
	if filter.FlightCode != "" {
		q = q.Where("UPPER(flight_code) = UPPER(?)", filter.FlightCode)
	}

	var bookings []models.Booking
	if err := q.Order("booking_ref").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByRef finds a booking by its reference.
func (r *BookingRepository) FindByRef(ctx context.Context, bookingRef string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("UPPER(booking_ref) = UPPER(?)", bookingRef).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}
