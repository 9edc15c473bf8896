package services

import (
	"context"
	"fmt"
	"time"

	"airline-marketplace/authority/internal/apperrors"
	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/constants"
	"airline-marketplace/authority/internal/db/repositories"
	"airline-marketplace/authority/internal/metrics"
	models "airline-marketplace/authority/internal/models/gorm"
)

// FlightsService backs the flight CRUD surface. Unfiltered list queries are
// served through the cache; any mutation invalidates it.
type FlightsService struct {
	flights  *repositories.FlightRepository
	airports *repositories.AirportRepository
	airlines *repositories.AirlineRepository
	cache    common.CacheInterface
	cacheTTL time.Duration
	metrics  *metrics.MetricsRegistry
	ledger   *LedgerService
}

// NewFlightsService creates a new flights service. cache may be nil.
func NewFlightsService(
	flights *repositories.FlightRepository,
	airports *repositories.AirportRepository,
	airlines *repositories.AirlineRepository,
	cache common.CacheInterface,
	cacheTTL time.Duration,
) *FlightsService {
	return &FlightsService{
		flights:  flights,
		airports: airports,
		airlines: airlines,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// WithMetrics attaches a metrics registry. Returns the service for chaining.
func (s *FlightsService) WithMetrics(reg *metrics.MetricsRegistry) *FlightsService {
	s.metrics = reg
	return s
}

// WithLedger attaches the seat ledger that serializes flight updates against
// bookings. Required for Update; returns the service for chaining.
func (s *FlightsService) WithLedger(ledger *LedgerService) *FlightsService {
	s.ledger = ledger
	return s
}

// List returns flights matching the filter.
func (s *FlightsService) List(ctx context.Context, filter repositories.FlightFilter) ([]models.Flight, error) {
	if s.cache != nil && filter == (repositories.FlightFilter{}) {
		key := string(constants.CachePrefixFlightList)
		if s.metrics != nil {
			if _, hit := s.cache.Get(key); hit {
				s.metrics.CacheHitsTotal.WithLabelValues(key).Inc()
			} else {
				s.metrics.CacheMissesTotal.WithLabelValues(key).Inc()
			}
		}
		val, err := s.cache.GetOrSet(key, s.cacheTTL, func() (any, error) {
			return s.flights.List(ctx, filter)
		})
		if err != nil {
			return nil, err
		}
		if flights, ok := val.([]models.Flight); ok {
			return flights, nil
		}
		// Cached by a serializing backend; fall through to the repository.
	}
	return s.flights.List(ctx, filter)
}

// Get returns one flight by code.
func (s *FlightsService) Get(ctx context.Context, flightCode string) (*models.Flight, error) {
	return s.flights.FindByCode(ctx, flightCode)
}

// Create validates references and inserts a new flight. The referenced
// airports and airline must exist and the airports must differ.
func (s *FlightsService) Create(ctx context.Context, flight *models.Flight) error {
	flight.DurationSeconds = int64(flight.Duration().Seconds())

	if err := flight.Validate(); err != nil {
		return err
	}
	if _, err := s.airports.FindByIdent(ctx, flight.DepartureIdent); err != nil {
		return fmt.Errorf("departure airport %s: %w", flight.DepartureIdent, err)
	}
	if _, err := s.airports.FindByIdent(ctx, flight.DestinationIdent); err != nil {
		return fmt.Errorf("destination airport %s: %w", flight.DestinationIdent, err)
	}
	if _, err := s.airlines.FindByCode(ctx, flight.AirlineCode); err != nil {
		return fmt.Errorf("airline %s: %w", flight.AirlineCode, err)
	}

	if err := s.flights.Create(ctx, flight); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Update applies non-identity changes to a flight. Nil fields keep their
// current value. The write goes through the ledger so an admin update and a
// booking on the same flight cannot interleave.
func (s *FlightsService) Update(ctx context.Context, flightCode string, basePrice *float64, totalSeats, availableSeats *int) (*models.Flight, error) {
	flight, err := s.ledger.UpdateFlight(ctx, flightCode, basePrice, totalSeats, availableSeats)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return flight, nil
}

// Delete removes a flight and its bookings.
func (s *FlightsService) Delete(ctx context.Context, flightCode string) error {
	if flightCode == "" {
		return fmt.Errorf("flight code is required: %w", apperrors.ErrInvalidArgument)
	}
	if err := s.flights.Delete(ctx, flightCode); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Invalidate drops the cached flight list. Exposed so the booking flow can
// call it after seat mutations.
func (s *FlightsService) Invalidate() {
	s.invalidate()
}

func (s *FlightsService) invalidate() {
	if s.cache != nil {
		s.cache.Delete(string(constants.CachePrefixFlightList))
	}
}
