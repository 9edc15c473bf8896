package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"airline-marketplace/authority/internal/apperrors"
	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/db/repositories"
	models "airline-marketplace/authority/internal/models/gorm"
)

func newFlightsService(gdb *gorm.DB, cache common.CacheInterface) *FlightsService {
	return NewFlightsService(
		repositories.NewFlightRepository(gdb),
		repositories.NewAirportRepository(gdb),
		repositories.NewAirlineRepository(gdb),
		cache,
		time.Minute,
	).WithLedger(NewLedgerService(gdb, nil))
}

func TestFlightsService_Create_Success(t *testing.T) {
	gdb := setupTestDB(t)
	seedFlight(t, gdb, 10, 10)
	svc := newFlightsService(gdb, nil)

	flight := models.Flight{
		FlightCode:       "SL7654321",
		DepartureIdent:   "VCBI",
		DestinationIdent: "VCRI",
		DepartureTime:    time.Now().Add(48 * time.Hour),
		ArrivalTime:      time.Now().Add(50 * time.Hour),
		BasePrice:        99.99,
		TotalSeats:       150,
		AvailableSeats:   150,
		AirlineCode:      "SL",
	}
	if err := svc.Create(context.Background(), &flight); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if flight.DurationSeconds != int64((2 * time.Hour).Seconds()) {
		t.Errorf("Expected derived duration of 7200s, got %d", flight.DurationSeconds)
	}

	got, err := svc.Get(context.Background(), "SL7654321")
	if err != nil {
		t.Fatalf("Expected to find created flight, got %v", err)
	}
	if got.AvailableSeats != 150 {
		t.Errorf("Expected 150 available seats, got %d", got.AvailableSeats)
	}
}

func TestFlightsService_Create_SameAirports(t *testing.T) {
	gdb := setupTestDB(t)
	seedFlight(t, gdb, 10, 10)
	svc := newFlightsService(gdb, nil)

	flight := models.Flight{
		FlightCode:       "SL7654321",
		DepartureIdent:   "VCBI",
		DestinationIdent: "VCBI",
		DepartureTime:    time.Now().Add(48 * time.Hour),
		ArrivalTime:      time.Now().Add(50 * time.Hour),
		BasePrice:        99.99,
		TotalSeats:       150,
		AvailableSeats:   150,
		AirlineCode:      "SL",
	}
	err := svc.Create(context.Background(), &flight)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for identical airports, got %v", err)
	}
}

func TestFlightsService_Create_UnknownAirline(t *testing.T) {
	gdb := setupTestDB(t)
	seedFlight(t, gdb, 10, 10)
	svc := newFlightsService(gdb, nil)

	flight := models.Flight{
		FlightCode:       "ZZ0000001",
		DepartureIdent:   "VCBI",
		DestinationIdent: "VCRI",
		DepartureTime:    time.Now().Add(48 * time.Hour),
		ArrivalTime:      time.Now().Add(50 * time.Hour),
		BasePrice:        10,
		TotalSeats:       50,
		AvailableSeats:   50,
		AirlineCode:      "ZZ",
	}
	err := svc.Create(context.Background(), &flight)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown airline, got %v", err)
	}
}

func TestFlightsService_Update_SeatBounds(t *testing.T) {
	gdb := setupTestDB(t)
	code := seedFlight(t, gdb, 10, 10)
	svc := newFlightsService(gdb, nil)

	// available > total must be rejected in full.
	available := 15
	_, err := svc.Update(context.Background(), code, nil, nil, &available)
	if !errors.Is(err, apperrors.ErrInvariantViolation) {
		t.Errorf("Expected ErrInvariantViolation, got %v", err)
	}

	got, _ := svc.Get(context.Background(), code)
	if got.AvailableSeats != 10 {
		t.Errorf("Expected rejected update to leave seats at 10, got %d", got.AvailableSeats)
	}

	// Shrinking total below available is equally invalid.
	total := 5
	_, err = svc.Update(context.Background(), code, nil, &total, nil)
	if !errors.Is(err, apperrors.ErrInvariantViolation) {
		t.Errorf("Expected ErrInvariantViolation, got %v", err)
	}

	// A consistent shrink of both is fine.
	availableOK := 5
	updated, err := svc.Update(context.Background(), code, nil, &total, &availableOK)
	if err != nil {
		t.Fatalf("Expected consistent update to succeed, got %v", err)
	}
	if updated.TotalSeats != 5 || updated.AvailableSeats != 5 {
		t.Errorf("Expected 5/5 seats, got %d/%d", updated.AvailableSeats, updated.TotalSeats)
	}
}

func TestFlightsService_Update_NegativePrice(t *testing.T) {
	gdb := setupTestDB(t)
	code := seedFlight(t, gdb, 10, 10)
	svc := newFlightsService(gdb, nil)

	price := -1.0
	_, err := svc.Update(context.Background(), code, &price, nil, nil)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

// A price-only PATCH must not write the seat columns back; a booking
// committed in between would otherwise be silently undone.
func TestFlightsService_Update_PriceOnlyLeavesSeats(t *testing.T) {
	gdb := setupTestDB(t)
	code := seedFlight(t, gdb, 10, 10)
	ledger := NewLedgerService(gdb, nil)
	svc := newFlightsService(gdb, nil).WithLedger(ledger)

	if _, err := ledger.CreateBooking(context.Background(), code, 7); err != nil {
		t.Fatalf("Booking failed: %v", err)
	}

	price := 250.0
	updated, err := svc.Update(context.Background(), code, &price, nil, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.BasePrice != 250.0 {
		t.Errorf("Expected price 250.0, got %v", updated.BasePrice)
	}
	if updated.AvailableSeats != 9 {
		t.Errorf("Expected the booked seat to stay reserved, got %d available", updated.AvailableSeats)
	}

	got, _ := svc.Get(context.Background(), code)
	if got.AvailableSeats != 9 {
		t.Errorf("Expected 9 available seats after price-only update, got %d", got.AvailableSeats)
	}
}

// Admin updates take the same per-flight lock as bookings, so an update can
// never overwrite a seat decrement that landed between its read and write.
func TestFlightsService_Update_ConcurrentWithBookings(t *testing.T) {
	gdb := setupTestDB(t)
	code := seedFlight(t, gdb, 200, 200)
	ledger := NewLedgerService(gdb, nil)
	svc := newFlightsService(gdb, nil).WithLedger(ledger)

	const passengers = 60
	var wg sync.WaitGroup
	for i := 0; i < passengers; i++ {
		wg.Add(2)
		go func(passport int64) {
			defer wg.Done()
			if _, err := ledger.CreateBooking(context.Background(), code, passport); err != nil {
				t.Errorf("Booking %d failed: %v", passport, err)
			}
		}(int64(i + 1))
		go func(i int) {
			defer wg.Done()
			price := 100.0 + float64(i)
			if _, err := svc.Update(context.Background(), code, &price, nil, nil); err != nil {
				t.Errorf("Update %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	flight, err := svc.Get(context.Background(), code)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	var booked int64
	gdb.Model(&models.Booking{}).Where("flight_code = ?", code).Count(&booked)
	if booked != passengers {
		t.Fatalf("Expected %d bookings, got %d", passengers, booked)
	}
	if flight.AvailableSeats != flight.TotalSeats-int(booked) {
		t.Errorf("Seat count drifted: %d available with %d of %d seats booked",
			flight.AvailableSeats, booked, flight.TotalSeats)
	}
}

func TestFlightsService_List_CachesUnfilteredQueries(t *testing.T) {
	gdb := setupTestDB(t)
	code := seedFlight(t, gdb, 10, 10)
	cache := common.NewCacheService(60, 120)
	svc := newFlightsService(gdb, cache)

	first, err := svc.List(context.Background(), repositories.FlightFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("Expected 1 flight, got %d", len(first))
	}

	// Mutate behind the cache; the unfiltered list must still serve the
	// cached copy.
	if err := gdb.Model(&models.Flight{}).Where("flight_code = ?", code).
		UpdateColumn("available_seats", 3).Error; err != nil {
		t.Fatalf("Direct update failed: %v", err)
	}

	second, err := svc.List(context.Background(), repositories.FlightFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if second[0].AvailableSeats != 10 {
		t.Errorf("Expected cached seats 10, got %d", second[0].AvailableSeats)
	}

	// Invalidation exposes the fresh row.
	svc.Invalidate()
	third, err := svc.List(context.Background(), repositories.FlightFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if third[0].AvailableSeats != 3 {
		t.Errorf("Expected fresh seats 3 after invalidation, got %d", third[0].AvailableSeats)
	}
}

func TestFlightsService_List_FilteredQueriesBypassCache(t *testing.T) {
	gdb := setupTestDB(t)
	code := seedFlight(t, gdb, 10, 10)
	cache := common.NewCacheService(60, 120)
	svc := newFlightsService(gdb, cache)

	// Prime the unfiltered cache.
	if _, err := svc.List(context.Background(), repositories.FlightFilter{}); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if err := gdb.Model(&models.Flight{}).Where("flight_code = ?", code).
		UpdateColumn("available_seats", 2).Error; err != nil {
		t.Fatalf("Direct update failed: %v", err)
	}

	filtered, err := svc.List(context.Background(), repositories.FlightFilter{AirlineCode: "SL"})
	if err != nil {
		t.Fatalf("Filtered list failed: %v", err)
	}
	if filtered[0].AvailableSeats != 2 {
		t.Errorf("Expected filtered query to bypass cache, got %d seats", filtered[0].AvailableSeats)
	}
}

func TestFlightsService_Delete_CascadesBookings(t *testing.T) {
	gdb := setupTestDB(t)
	code := seedFlight(t, gdb, 10, 10)
	svc := newFlightsService(gdb, nil)
	ledger := NewLedgerService(gdb, nil)

	if _, err := ledger.CreateBooking(context.Background(), code, 1); err != nil {
		t.Fatalf("Booking failed: %v", err)
	}

	if err := svc.Delete(context.Background(), code); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var bookings int64
	gdb.Model(&models.Booking{}).Where("flight_code = ?", code).Count(&bookings)
	if bookings != 0 {
		t.Errorf("Expected bookings cascade-deleted, found %d", bookings)
	}

	if _, err := svc.Get(context.Background(), code); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestFlightsService_Delete_NotFound(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newFlightsService(gdb, nil)

	if err := svc.Delete(context.Background(), "XX9999999"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
