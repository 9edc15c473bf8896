package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"airline-marketplace/authority/internal/db/repositories"
	models "airline-marketplace/authority/internal/models/gorm"
)

func writeAirportsCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airports.csv")
	if err := os.WriteFile(path, []byte(airportCSV), 0o644); err != nil {
		t.Fatalf("Failed to write CSV fixture: %v", err)
	}
	return path
}

func newSeeder(gdb *gorm.DB) *SeederService {
	airlines := repositories.NewAirlineRepository(gdb)
	airports := repositories.NewAirportRepository(gdb)
	flights := repositories.NewFlightRepository(gdb)
	locations := repositories.NewLocationRepository(gdb)
	importer := NewAirportImporterService(airports, locations)
	ledger := NewLedgerService(gdb, nil)
	return NewSeederService(airlines, airports, flights, importer, ledger)
}

func TestSeederService_Seed(t *testing.T) {
	gdb := setupTestDB(t)
	seeder := newSeeder(gdb)

	if err := seeder.Seed(context.Background(), writeAirportsCSV(t), 100, 10, 3); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var airlines int64
	gdb.Model(&models.Airline{}).Count(&airlines)
	if airlines != int64(len(demoAirlines)) {
		t.Errorf("Expected %d airlines, got %d", len(demoAirlines), airlines)
	}

	var airports int64
	gdb.Model(&models.Airport{}).Count(&airports)
	if airports != 3 {
		t.Errorf("Expected 3 airports, got %d", airports)
	}

	var flights []models.Flight
	if err := gdb.Find(&flights).Error; err != nil {
		t.Fatalf("Failed to load flights: %v", err)
	}
	if len(flights) != 10 {
		t.Errorf("Expected 10 flights, got %d", len(flights))
	}

	// Every seeded flight obeys the seat bounds, and its live bookings match
	// the seats taken.
	for _, f := range flights {
		if f.AvailableSeats < 0 || f.AvailableSeats > f.TotalSeats {
			t.Errorf("Flight %s has out-of-bounds seats %d/%d", f.FlightCode, f.AvailableSeats, f.TotalSeats)
		}
		var bookings int64
		gdb.Model(&models.Booking{}).Where("flight_code = ?", f.FlightCode).Count(&bookings)
		if int(bookings) != f.TotalSeats-f.AvailableSeats {
			t.Errorf("Flight %s: %d bookings but %d seats taken", f.FlightCode, bookings, f.TotalSeats-f.AvailableSeats)
		}
	}
}

func TestSeederService_Seed_Idempotent(t *testing.T) {
	gdb := setupTestDB(t)
	seeder := newSeeder(gdb)
	csvPath := writeAirportsCSV(t)

	if err := seeder.Seed(context.Background(), csvPath, 100, 5, 2); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	// Re-seeding must not fail on the existing airlines.
	if err := seeder.Seed(context.Background(), csvPath, 100, 5, 2); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	var airlines int64
	gdb.Model(&models.Airline{}).Count(&airlines)
	if airlines != int64(len(demoAirlines)) {
		t.Errorf("Expected airlines not to duplicate, got %d", airlines)
	}
}

func TestSeederService_Seed_MissingDataset(t *testing.T) {
	gdb := setupTestDB(t)
	seeder := newSeeder(gdb)

	if err := seeder.Seed(context.Background(), "/nonexistent/airports.csv", 100, 5, 2); err == nil {
		t.Error("Expected error for missing dataset file")
	}
}
