package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/db/repositories"
	"airline-marketplace/authority/internal/models/dtos"
	models "airline-marketplace/authority/internal/models/gorm"
)

// FlightCatalog is the flight surface the handlers depend on.
type FlightCatalog interface {
	List(ctx context.Context, filter repositories.FlightFilter) ([]models.Flight, error)
	Get(ctx context.Context, flightCode string) (*models.Flight, error)
	Create(ctx context.Context, flight *models.Flight) error
	Update(ctx context.Context, flightCode string, basePrice *float64, totalSeats, availableSeats *int) (*models.Flight, error)
	Delete(ctx context.Context, flightCode string) error
}

// ListFlightsHandler handles GET /api/v1/flights
func ListFlightsHandler(flights FlightCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		filter := repositories.FlightFilter{
			FlightCode:         q.Get("flight_code"),
			AirlineCode:        q.Get("airline_code"),
			DepartureIdent:     q.Get("departure_ident"),
			DestinationIdent:   q.Get("destination_ident"),
			DepartureCity:      q.Get("departure_city"),
			DestinationCity:    q.Get("destination_city"),
			DepartureCountry:   q.Get("departure_country"),
			DestinationCountry: q.Get("destination_country"),
			DepartureTimeMin:   queryTime(q, "departure_time_min"),
			DepartureTimeMax:   queryTime(q, "departure_time_max"),
			ArrivalTimeMin:     queryTime(q, "arrival_time_min"),
			ArrivalTimeMax:     queryTime(q, "arrival_time_max"),
			DurationMin:        queryDuration(q, "duration_min"),
			DurationMax:        queryDuration(q, "duration_max"),
			BasePriceMin:       queryFloat(q, "base_price_min"),
			BasePriceMax:       queryFloat(q, "base_price_max"),
			TotalSeatsMin:      queryInt(q, "total_seats_min"),
			TotalSeatsMax:      queryInt(q, "total_seats_max"),
			AvailableSeatsMin:  queryInt(q, "available_seats_min"),
			AvailableSeatsMax:  queryInt(q, "available_seats_max"),
		}

		list, err := flights.List(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch flights", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched flights", list)
	}
}

// CreateFlightHandler handles POST /api/v1/flights
func CreateFlightHandler(flights FlightCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		flight := models.Flight{
			FlightCode:       req.FlightCode,
			DepartureIdent:   req.DepartureIdent,
			DestinationIdent: req.DestinationIdent,
			DepartureTime:    req.DepartureTime,
			ArrivalTime:      req.ArrivalTime,
			BasePrice:        req.BasePrice,
			TotalSeats:       req.TotalSeats,
			AvailableSeats:   req.TotalSeats,
			AirlineCode:      req.AirlineCode,
		}

		if err := flights.Create(r.Context(), &flight); err != nil {
			common.RespondError(w, initTime, err, "", StatusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Flight created", flight, http.StatusCreated)
	}
}

// UpdateFlightHandler handles PATCH /api/v1/flights
func UpdateFlightHandler(flights FlightCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.FlightCode == "" {
			common.RespondError(w, initTime, nil, "Flight code is required", http.StatusBadRequest)
			return
		}

		flight, err := flights.Update(r.Context(), req.FlightCode, req.BasePrice, req.TotalSeats, req.AvailableSeats)
		if err != nil {
			common.RespondError(w, initTime, err, "", StatusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Flight updated", flight)
	}
}

// DeleteFlightHandler handles DELETE /api/v1/flights?flight_code=
func DeleteFlightHandler(flights FlightCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightCode := r.URL.Query().Get("flight_code")
		if flightCode == "" {
			common.RespondError(w, initTime, nil, "Flight code is required", http.StatusBadRequest)
			return
		}

		if err := flights.Delete(r.Context(), flightCode); err != nil {
			common.RespondError(w, initTime, err, "", StatusForError(err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
