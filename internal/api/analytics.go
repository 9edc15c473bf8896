package api

import (
	"context"
	"net/http"
	"time"

	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/models/entities"
)

// AnalyticsReporter runs the reporting queries.
type AnalyticsReporter interface {
	PassengersPerAirline(ctx context.Context, day time.Time) ([]entities.AirlinePassengers, error)
	FlightIncome(ctx context.Context) ([]entities.FlightIncome, error)
}

// PassengersPerAirlineHandler handles GET /api/v1/analytics/passengers-per-airline.
// An optional date=YYYY-MM-DD parameter selects the departure day; the default
// is today.
func PassengersPerAirlineHandler(analytics AnalyticsReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		day := time.Now()
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				common.RespondError(w, initTime, err, "Date must be formatted YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			day = parsed
		}

		rows, err := analytics.PassengersPerAirline(r.Context(), day)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to run passengers report", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Passengers per airline", rows)
	}
}

// FlightIncomeHandler handles GET /api/v1/analytics/flight-income
func FlightIncomeHandler(analytics AnalyticsReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		rows, err := analytics.FlightIncome(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to run income report", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Flight income", rows)
	}
}
