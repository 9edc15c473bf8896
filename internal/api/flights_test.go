package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"airline-marketplace/authority/internal/apperrors"
	"airline-marketplace/authority/internal/db/repositories"
	models "airline-marketplace/authority/internal/models/gorm"
)

type mockFlights struct {
	listFunc   func(ctx context.Context, filter repositories.FlightFilter) ([]models.Flight, error)
	getFunc    func(ctx context.Context, flightCode string) (*models.Flight, error)
	createFunc func(ctx context.Context, flight *models.Flight) error
	updateFunc func(ctx context.Context, flightCode string, basePrice *float64, totalSeats, availableSeats *int) (*models.Flight, error)
	deleteFunc func(ctx context.Context, flightCode string) error
}

func (m *mockFlights) List(ctx context.Context, filter repositories.FlightFilter) ([]models.Flight, error) {
	return m.listFunc(ctx, filter)
}
func (m *mockFlights) Get(ctx context.Context, flightCode string) (*models.Flight, error) {
	return m.getFunc(ctx, flightCode)
}
func (m *mockFlights) Create(ctx context.Context, flight *models.Flight) error {
	return m.createFunc(ctx, flight)
}
func (m *mockFlights) Update(ctx context.Context, flightCode string, basePrice *float64, totalSeats, availableSeats *int) (*models.Flight, error) {
	return m.updateFunc(ctx, flightCode, basePrice, totalSeats, availableSeats)
}
func (m *mockFlights) Delete(ctx context.Context, flightCode string) error {
	return m.deleteFunc(ctx, flightCode)
}

func TestListFlightsHandler_ParsesFilter(t *testing.T) {
	var gotFilter repositories.FlightFilter
	flights := &mockFlights{
		listFunc: func(ctx context.Context, filter repositories.FlightFilter) ([]models.Flight, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	url := "/api/v1/flights?departure_city=Colombo&destination_country=United%20Kingdom" +
		"&base_price_min=50.5&available_seats_min=1&departure_time_min=2026-09-01" +
		"&duration_min=2h"
	req := httptest.NewRequest("GET", url, nil)
	rec := httptest.NewRecorder()

	ListFlightsHandler(flights)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if gotFilter.DepartureCity != "Colombo" {
		t.Errorf("Expected departure city Colombo, got %s", gotFilter.DepartureCity)
	}
	if gotFilter.DestinationCountry != "United Kingdom" {
		t.Errorf("Expected destination country United Kingdom, got %s", gotFilter.DestinationCountry)
	}
	if gotFilter.BasePriceMin == nil || *gotFilter.BasePriceMin != 50.5 {
		t.Errorf("Expected base price min 50.5, got %v", gotFilter.BasePriceMin)
	}
	if gotFilter.AvailableSeatsMin == nil || *gotFilter.AvailableSeatsMin != 1 {
		t.Errorf("Expected available seats min 1, got %v", gotFilter.AvailableSeatsMin)
	}
	if gotFilter.DepartureTimeMin == nil || gotFilter.DepartureTimeMin.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("Expected departure time min 2026-09-01, got %v", gotFilter.DepartureTimeMin)
	}
	if gotFilter.DurationMin == nil || *gotFilter.DurationMin != 2*time.Hour {
		t.Errorf("Expected duration min 2h, got %v", gotFilter.DurationMin)
	}
}

func TestListFlightsHandler_IgnoresMalformedBounds(t *testing.T) {
	var gotFilter repositories.FlightFilter
	flights := &mockFlights{
		listFunc: func(ctx context.Context, filter repositories.FlightFilter) ([]models.Flight, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	req := httptest.NewRequest("GET", "/api/v1/flights?base_price_min=abc&total_seats_max=xyz", nil)
	rec := httptest.NewRecorder()

	ListFlightsHandler(flights)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if gotFilter.BasePriceMin != nil || gotFilter.TotalSeatsMax != nil {
		t.Errorf("Expected malformed bounds dropped, got %+v", gotFilter)
	}
}

func TestCreateFlightHandler_SeedsAvailableFromTotal(t *testing.T) {
	var created *models.Flight
	flights := &mockFlights{
		createFunc: func(ctx context.Context, flight *models.Flight) error {
			created = flight
			return nil
		},
	}

	body := `{"flight_code":"SL1234567","departure_ident":"VCBI","destination_ident":"VCRI",` +
		`"departure_time":"2026-09-01T08:00:00Z","arrival_time":"2026-09-01T10:00:00Z",` +
		`"base_price":120.5,"total_seats":180,"airline_code":"SL"}`
	req := httptest.NewRequest("POST", "/api/v1/flights", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateFlightHandler(flights)(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}
	if created.AvailableSeats != 180 {
		t.Errorf("Expected new flight to start fully available, got %d", created.AvailableSeats)
	}
}

func TestUpdateFlightHandler_InvariantViolation(t *testing.T) {
	flights := &mockFlights{
		updateFunc: func(ctx context.Context, flightCode string, basePrice *float64, totalSeats, availableSeats *int) (*models.Flight, error) {
			return nil, apperrors.ErrInvariantViolation
		},
	}

	body := `{"flight_code":"SL1234567","available_seats":999}`
	req := httptest.NewRequest("PATCH", "/api/v1/flights", strings.NewReader(body))
	rec := httptest.NewRecorder()

	UpdateFlightHandler(flights)(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}
}

func TestDeleteFlightHandler_NoContent(t *testing.T) {
	flights := &mockFlights{
		deleteFunc: func(ctx context.Context, flightCode string) error {
			return nil
		},
	}

	req := httptest.NewRequest("DELETE", "/api/v1/flights?flight_code=SL1234567", nil)
	rec := httptest.NewRecorder()

	DeleteFlightHandler(flights)(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
}

func TestDeleteFlightHandler_NotFound(t *testing.T) {
	flights := &mockFlights{
		deleteFunc: func(ctx context.Context, flightCode string) error {
			return apperrors.ErrNotFound
		},
	}

	req := httptest.NewRequest("DELETE", "/api/v1/flights?flight_code=XX0000000", nil)
	rec := httptest.NewRecorder()

	DeleteFlightHandler(flights)(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
