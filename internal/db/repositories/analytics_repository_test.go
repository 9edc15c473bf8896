package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func setupAnalyticsDB(t *testing.T) *sqlx.DB {
	sqlDB, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	sqlDB.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE airlines (code TEXT PRIMARY KEY, name TEXT);
	CREATE TABLE flights (
		flight_code TEXT PRIMARY KEY,
		airline_code TEXT,
		departure_ident TEXT,
		departure_time TIMESTAMP,
		base_price REAL,
		total_seats INTEGER,
		available_seats INTEGER
	);
	CREATE TABLE bookings (booking_ref TEXT PRIMARY KEY, flight_code TEXT, passport_number INTEGER);
	`
	if _, err := sqlDB.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return sqlDB
}

func seedAnalyticsData(t *testing.T, sqlDB *sqlx.DB, departure time.Time) {
	t.Helper()

	stmts := []struct {
		q    string
		args []any
	}{
		{"INSERT INTO airlines VALUES ('SL', 'SkyLink')", nil},
		{"INSERT INTO airlines VALUES ('FA', 'FlyAmmar')", nil},
		{"INSERT INTO flights VALUES ('SL1234567', 'SL', 'VCBI', ?, 100.0, 10, 7)", []any{departure}},
		{"INSERT INTO flights VALUES ('FA7654321', 'FA', 'EGLL', ?, 50.0, 20, 19)", []any{departure}},
		{"INSERT INTO bookings VALUES ('REF0000001', 'SL1234567', 1)", nil},
		{"INSERT INTO bookings VALUES ('REF0000002', 'SL1234567', 2)", nil},
		{"INSERT INTO bookings VALUES ('REF0000003', 'SL1234567', 3)", nil},
		{"INSERT INTO bookings VALUES ('REF0000004', 'FA7654321', 4)", nil},
	}
	for _, s := range stmts {
		if _, err := sqlDB.Exec(s.q, s.args...); err != nil {
			t.Fatalf("Failed to seed row: %v", err)
		}
	}
}

func TestAnalyticsRepository_PassengersPerAirline(t *testing.T) {
	sqlDB := setupAnalyticsDB(t)
	day := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	seedAnalyticsData(t, sqlDB, day)

	repo := NewAnalyticsRepository(sqlDB)
	rows, err := repo.PassengersPerAirline(context.Background(), day)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 airlines, got %d", len(rows))
	}
	if rows[0].AirlineName != "SkyLink" || rows[0].Passengers != 3 {
		t.Errorf("Expected SkyLink with 3 passengers first, got %+v", rows[0])
	}
	if rows[1].AirlineName != "FlyAmmar" || rows[1].Passengers != 1 {
		t.Errorf("Expected FlyAmmar with 1 passenger, got %+v", rows[1])
	}
}

func TestAnalyticsRepository_PassengersPerAirline_OtherDay(t *testing.T) {
	sqlDB := setupAnalyticsDB(t)
	seedAnalyticsData(t, sqlDB, time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC))

	repo := NewAnalyticsRepository(sqlDB)
	rows, err := repo.PassengersPerAirline(context.Background(), time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows for a day without departures, got %d", len(rows))
	}
}

func TestAnalyticsRepository_FlightIncome(t *testing.T) {
	sqlDB := setupAnalyticsDB(t)
	seedAnalyticsData(t, sqlDB, time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC))

	repo := NewAnalyticsRepository(sqlDB)
	rows, err := repo.FlightIncome(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 flights, got %d", len(rows))
	}
	// SL1234567 sold 3 seats at 100.0; FA7654321 sold 1 seat at 50.0.
	if rows[0].FlightCode != "SL1234567" || rows[0].Income != 300.0 {
		t.Errorf("Expected SL1234567 income 300, got %+v", rows[0])
	}
	if rows[1].FlightCode != "FA7654321" || rows[1].Income != 50.0 {
		t.Errorf("Expected FA7654321 income 50, got %+v", rows[1])
	}
}
