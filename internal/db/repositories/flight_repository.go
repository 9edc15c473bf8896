package repositories

import (
	"context"
	"errors"
	"time"

	"airline-marketplace/authority/internal/apperrors"
	models "airline-marketplace/authority/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// FlightFilter narrows flight list queries. Airport/city/country matches are
// exact (case-insensitive); numeric and time bounds are inclusive.
type FlightFilter struct {
	FlightCode         string
	AirlineCode        string
	DepartureIdent     string
	DestinationIdent   string
	DepartureCity      string
	DestinationCity    string
	DepartureCountry   string
	DestinationCountry string
	DepartureTimeMin   *time.Time
	DepartureTimeMax   *time.Time
	ArrivalTimeMin     *time.Time
	ArrivalTimeMax     *time.Time
	DurationMin        *time.Duration
	DurationMax        *time.Duration
	BasePriceMin       *float64
	BasePriceMax       *float64
	TotalSeatsMin      *int
	TotalSeatsMax      *int
	AvailableSeatsMin  *int
	AvailableSeatsMax  *int
}

// FlightRepository handles flight table operations
type FlightRepository struct {
	db *gormlib.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gormlib.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// List returns flights matching the filter.
func (r *FlightRepository) List(ctx context.Context, filter FlightFilter) ([]models.Flight, error) {
	q := r.db.WithContext(ctx).Model(&models.Flight{})

	if filter.FlightCode != "" {
		q = q.Where("UPPER(flights.flight_code) = UPPER(?)", filter.FlightCode)
	}
	if filter.AirlineCode != "" {
		q = q.Where("UPPER(airline_code) = UPPER(?)", filter.AirlineCode)
	}
	if filter.DepartureIdent != "" {
		q = q.Where("UPPER(departure_ident) = UPPER(?)", filter.DepartureIdent)
	}
	if filter.DestinationIdent != "" {
		q = q.Where("UPPER(destination_ident) = UPPER(?)", filter.DestinationIdent)
	}

	if filter.DepartureCity != "" || filter.DepartureCountry != "" {
		q = q.Joins("JOIN airports dep ON dep.ident = flights.departure_ident").
			Joins("JOIN cities dep_city ON dep_city.id = dep.city_id")
		if filter.DepartureCity != "" {
			q = q.Where("LOWER(dep_city.name) = LOWER(?)", filter.DepartureCity)
		}
		if filter.DepartureCountry != "" {
			q = q.Where("LOWER(dep_city.country_name) = LOWER(?)", filter.DepartureCountry)
		}
	}
	if filter.DestinationCity != "" || filter.DestinationCountry != "" {
		q = q.Joins("JOIN airports dest ON dest.ident = flights.destination_ident").
			Joins("JOIN cities dest_city ON dest_city.id = dest.city_id")
		if filter.DestinationCity != "" {
			q = q.Where("LOWER(dest_city.name) = LOWER(?)", filter.DestinationCity)
		}
		if filter.DestinationCountry != "" {
			q = q.Where("LOWER(dest_city.country_name) = LOWER(?)", filter.DestinationCountry)
		}
	}

	if filter.DepartureTimeMin != nil {
		q = q.Where("departure_time >= ?", *filter.DepartureTimeMin)
	}
	if filter.DepartureTimeMax != nil {
		q = q.Where("departure_time <= ?", *filter.DepartureTimeMax)
	}
	if filter.ArrivalTimeMin != nil {
		q = q.Where("arrival_time >= ?", *filter.ArrivalTimeMin)
	}
	if filter.ArrivalTimeMax != nil {
		q = q.Where("arrival_time <= ?", *filter.ArrivalTimeMax)
	}
	if filter.DurationMin != nil {
		q = q.Where("duration_seconds >= ?", int64(filter.DurationMin.Seconds()))
	}
	if filter.DurationMax != nil {
		q = q.Where("duration_seconds <= ?", int64(filter.DurationMax.Seconds()))
	}
	if filter.BasePriceMin != nil {
		q = q.Where("base_price >= ?", *filter.BasePriceMin)
	}
	if filter.BasePriceMax != nil {
		q = q.Where("base_price <= ?", *filter.BasePriceMax)
	}
	if filter.TotalSeatsMin != nil {
		q = q.Where("total_seats >= ?", *filter.TotalSeatsMin)
	}
	if filter.TotalSeatsMax != nil {
		q = q.Where("total_seats <= ?", *filter.TotalSeatsMax)
	}
	if filter.AvailableSeatsMin != nil {
		q = q.Where("available_seats >= ?", *filter.AvailableSeatsMin)
	}
	if filter.AvailableSeatsMax != nil {
		q = q.Where("available_seats <= ?", *filter.AvailableSeatsMax)
	}

	var flights []models.Flight
	if err := q.Order("departure_time").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

// FindByCode finds a flight by its code.
func (r *FlightRepository) FindByCode(ctx context.Context, flightCode string) (*models.Flight, error) {
	var flight models.Flight
	err := r.db.WithContext(ctx).
		Where("UPPER(flight_code) = UPPER(?)", flightCode).
		First(&flight).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &flight, nil
}

// Create validates and inserts a new flight.
func (r *FlightRepository) Create(ctx context.Context, flight *models.Flight) error {
	if err := flight.Validate(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Create(flight).Error
	if errors.Is(err, gormlib.ErrDuplicatedKey) {
		return apperrors.ErrAlreadyExists
	}
	return err
}

// Delete removes a flight and cascades to its bookings.
func (r *FlightRepository) Delete(ctx context.Context, flightCode string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var flight models.Flight
		if err := tx.Where("UPPER(flight_code) = UPPER(?)", flightCode).First(&flight).Error; err != nil {
			if errors.Is(err, gormlib.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if err := tx.Where("flight_code = ?", flight.FlightCode).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&flight).Error
	})
}
