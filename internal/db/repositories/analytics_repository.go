package repositories

import (
	"context"
	"time"

	"airline-marketplace/authority/internal/constants"
	"airline-marketplace/authority/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// AnalyticsRepository runs the raw-SQL reporting queries over sqlx.
type AnalyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// PassengersPerAirline returns booking counts per airline for flights
// departing on the given day.
func (r *AnalyticsRepository) PassengersPerAirline(ctx context.Context, day time.Time) ([]entities.AirlinePassengers, error) {
	var rows []entities.AirlinePassengers
	query := r.db.Rebind(constants.PassengersPerAirlineToday)
	if err := r.db.SelectContext(ctx, &rows, query, day.Format("2006-01-02")); err != nil {
		return nil, err
	}
	return rows, nil
}

// FlightIncome returns the derived income per flight.
func (r *AnalyticsRepository) FlightIncome(ctx context.Context) ([]entities.FlightIncome, error) {
	var rows []entities.FlightIncome
	if err := r.db.SelectContext(ctx, &rows, constants.FlightIncome); err != nil {
		return nil, err
	}
	return rows, nil
}
