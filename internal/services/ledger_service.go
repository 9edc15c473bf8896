package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"airline-marketplace/authority/internal/apperrors"
	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/constants"
	"airline-marketplace/authority/internal/logging"
	"airline-marketplace/authority/internal/metrics"
	models "airline-marketplace/authority/internal/models/gorm"

	"gorm.io/gorm"
)

// LedgerService keeps flight seat counts and booking records mutually
// consistent. Every seat mutation runs inside one transaction under a
// per-flight lock; the partner notification happens after commit and never
// holds the lock.
type LedgerService struct {
	db       *gorm.DB
	notifier common.Notifier
	metrics  *metrics.MetricsRegistry

	onSeatChange func()

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLedgerService creates a new seat ledger. notifier may be nil, in which
// case partner notifications are skipped.
func NewLedgerService(db *gorm.DB, notifier common.Notifier) *LedgerService {
	return &LedgerService{
		db:       db,
		notifier: notifier,
		locks:    make(map[string]*sync.Mutex),
	}
}

// WithMetrics attaches a metrics registry. Returns the service for chaining.
func (s *LedgerService) WithMetrics(reg *metrics.MetricsRegistry) *LedgerService {
	s.metrics = reg
	return s
}

// OnSeatChange registers a hook run after every committed seat mutation,
// used to invalidate the cached flight list.
func (s *LedgerService) OnSeatChange(fn func()) {
	s.onSeatChange = fn
}

// flightLock returns the mutex guarding one flight's seat-and-bookings
// aggregate. Operations on different flights never contend.
func (s *LedgerService) flightLock(flightCode string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lock, exists := s.locks[flightCode]; exists {
		return lock
	}
	lock := &sync.Mutex{}
	s.locks[flightCode] = lock
	return lock
}

// CreateBooking reserves one seat on the flight for the passport number and
// returns the new booking with its generated reference.
func (s *LedgerService) CreateBooking(ctx context.Context, flightCode string, passportNumber int64) (*models.Booking, error) {
	if passportNumber < 0 {
		return nil, fmt.Errorf("passport number must be non-negative: %w", apperrors.ErrInvalidArgument)
	}
	if flightCode == "" {
		return nil, fmt.Errorf("flight code is required: %w", apperrors.ErrInvalidArgument)
	}

	lock := s.flightLock(flightCode)
	lock.Lock()

	var booking models.Booking
	var airline models.Airline
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var flight models.Flight
		if err := tx.Where("flight_code = ?", flightCode).First(&flight).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("flight %s: %w", flightCode, apperrors.ErrNotFound)
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.Booking{}).
			Where("flight_code = ? AND passport_number = ?", flight.FlightCode, passportNumber).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fmt.Errorf("booking for flight %s and passport %d: %w",
				flight.FlightCode, passportNumber, apperrors.ErrAlreadyExists)
		}

		if flight.AvailableSeats == 0 {
			return fmt.Errorf("flight %s: %w", flight.FlightCode, apperrors.ErrCapacityExceeded)
		}

		ref, err := s.generateBookingRef(tx)
		if err != nil {
			return err
		}

		res := tx.Model(&models.Flight{}).
			Where("flight_code = ? AND available_seats > 0", flight.FlightCode).
			UpdateColumn("available_seats", gorm.Expr("available_seats - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("flight %s: %w", flight.FlightCode, apperrors.ErrCapacityExceeded)
		}

		booking = models.Booking{
			BookingRef:     ref,
			PassportNumber: passportNumber,
			FlightCode:     flight.FlightCode,
		}
		if err := tx.Create(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("booking reference collision: %w", apperrors.ErrExhausted)
			}
			return err
		}

		// Loaded inside the transaction so the notification below needs no
		// further reads.
		if err := tx.Where("code = ?", flight.AirlineCode).First(&airline).Error; err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
	lock.Unlock()

	if err != nil {
		if s.metrics != nil {
			s.metrics.BookingFailuresTotal.WithLabelValues(apperrors.Kind(err)).Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BookingsCreatedTotal.Inc()
	}
	if s.onSeatChange != nil {
		s.onSeatChange()
	}

	log := logging.WithBooking(booking.BookingRef, booking.FlightCode)
	log.Infow("Booking created")

	if s.notifier != nil {
		nerr := s.notifier.NotifyBookingCreated(ctx, airline.Endpoint, airline.Code,
			booking.BookingRef, booking.PassportNumber, booking.FlightCode)
		s.recordNotification(nerr)
		if nerr != nil {
			log.Warnw("Partner notification failed for booking creation",
				"airline", airline.Code,
				"error", nerr.Error(),
			)
		}
	}

	return &booking, nil
}

// UpdateFlight applies an admin change to a flight's price and seat counts.
// It holds the same per-flight lock as the booking operations and re-reads
// the row inside the transaction, so a booking committed between the admin's
// read and write cannot be clobbered with a stale seat count. Only the
// supplied fields are written back.
func (s *LedgerService) UpdateFlight(ctx context.Context, flightCode string, basePrice *float64, totalSeats, availableSeats *int) (*models.Flight, error) {
	if flightCode == "" {
		return nil, fmt.Errorf("flight code is required: %w", apperrors.ErrInvalidArgument)
	}

	lock := s.flightLock(flightCode)
	lock.Lock()

	var flight models.Flight
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("flight_code = ?", flightCode).First(&flight).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("flight %s: %w", flightCode, apperrors.ErrNotFound)
			}
			return err
		}

		updates := map[string]any{}
		if basePrice != nil {
			flight.BasePrice = *basePrice
			updates["base_price"] = *basePrice
		}
		if totalSeats != nil {
			flight.TotalSeats = *totalSeats
			updates["total_seats"] = *totalSeats
		}
		if availableSeats != nil {
			flight.AvailableSeats = *availableSeats
			updates["available_seats"] = *availableSeats
		}
		if len(updates) == 0 {
			return nil
		}

		if err := flight.Validate(); err != nil {
			return err
		}
		return tx.Model(&models.Flight{}).
			Where("flight_code = ?", flight.FlightCode).
			Updates(updates).Error
	})
	lock.Unlock()

	if err != nil {
		return nil, err
	}

	if (totalSeats != nil || availableSeats != nil) && s.onSeatChange != nil {
		s.onSeatChange()
	}
	return &flight, nil
}

func (s *LedgerService) recordNotification(err error) {
	if s.metrics == nil {
		return
	}
	outcome := "delivered"
	if err != nil {
		outcome = "failed"
	}
	s.metrics.NotificationsTotal.WithLabelValues(outcome).Inc()
}

// CancelBooking releases the booking's seat and deletes the record.
func (s *LedgerService) CancelBooking(ctx context.Context, bookingRef string) error {
	var booking models.Booking
	if err := s.db.WithContext(ctx).
		Where("booking_ref = ?", bookingRef).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("booking %s: %w", bookingRef, apperrors.ErrNotFound)
		}
		return err
	}

	lock := s.flightLock(booking.FlightCode)
	lock.Lock()

	var airline models.Airline
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-read under the lock; the booking may have been cancelled since.
		if err := tx.Where("booking_ref = ?", bookingRef).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("booking %s: %w", bookingRef, apperrors.ErrNotFound)
			}
			return err
		}

		var flight models.Flight
		if err := tx.Where("flight_code = ?", booking.FlightCode).First(&flight).Error; err != nil {
			return err
		}

		// A full flight with a live booking means the counts were corrupted
		// elsewhere; refuse to make it worse.
		if flight.AvailableSeats+1 > flight.TotalSeats {
			return fmt.Errorf("flight %s seat release would exceed total seats: %w",
				flight.FlightCode, apperrors.ErrInvariantViolation)
		}

		if err := tx.Model(&models.Flight{}).
			Where("flight_code = ?", flight.FlightCode).
			UpdateColumn("available_seats", gorm.Expr("available_seats + 1")).Error; err != nil {
			return err
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return err
		}

		if err := tx.Where("code = ?", flight.AirlineCode).First(&airline).Error; err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
	lock.Unlock()

	if err != nil {
		if s.metrics != nil {
			s.metrics.BookingFailuresTotal.WithLabelValues(apperrors.Kind(err)).Inc()
		}
		return err
	}

	if s.metrics != nil {
		s.metrics.BookingsCancelledTotal.Inc()
	}
	if s.onSeatChange != nil {
		s.onSeatChange()
	}

	log := logging.WithBooking(booking.BookingRef, booking.FlightCode)
	log.Infow("Booking cancelled")

	if s.notifier != nil {
		nerr := s.notifier.NotifyBookingCancelled(ctx, airline.Endpoint, airline.Code,
			booking.BookingRef)
		s.recordNotification(nerr)
		if nerr != nil {
			log.Warnw("Partner notification failed for booking cancellation",
				"airline", airline.Code,
				"error", nerr.Error(),
			)
		}
	}

	return nil
}

// generateBookingRef draws 10 characters from A-Z0-9, re-sampling on
// collision with an existing reference. The unique index on booking_ref
// backstops the check; after the attempt budget the operation fails with
// Exhausted.
func (s *LedgerService) generateBookingRef(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < constants.BookingRefMaxAttempts; attempt++ {
		ref := randomBookingRef()

		var count int64
		if err := tx.Model(&models.Booking{}).
			Where("booking_ref = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", apperrors.ErrExhausted
}

func randomBookingRef() string {
	buf := make([]byte, constants.BookingRefLength)
	for i := range buf {
		buf[i] = constants.BookingRefAlphabet[rand.IntN(len(constants.BookingRefAlphabet))]
	}
	return string(buf)
}
