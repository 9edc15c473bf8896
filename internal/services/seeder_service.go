package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"airline-marketplace/authority/internal/apperrors"
	"airline-marketplace/authority/internal/db/repositories"
	"airline-marketplace/authority/internal/logging"
	models "airline-marketplace/authority/internal/models/gorm"
)

// SeederService populates the database with demo data: the marketplace
// airlines, an airport dataset, and random flights with bookings. Bookings
// are created through the seat ledger so seeded data obeys every invariant.
type SeederService struct {
	airlines *repositories.AirlineRepository
	airports *repositories.AirportRepository
	flights  *repositories.FlightRepository
	importer *AirportImporterService
	ledger   *LedgerService
}

// NewSeederService creates a new seeder
func NewSeederService(
	airlines *repositories.AirlineRepository,
	airports *repositories.AirportRepository,
	flights *repositories.FlightRepository,
	importer *AirportImporterService,
	ledger *LedgerService,
) *SeederService {
	return &SeederService{
		airlines: airlines,
		airports: airports,
		flights:  flights,
		importer: importer,
		ledger:   ledger,
	}
}

var demoAirlines = []models.Airline{
	{Code: "SL", Name: "SkyLink", Country: "USA", Phone: "+1-800-123-4567", Endpoint: "https://sl.partner.example.com/bookings"},
	{Code: "FA", Name: "FlyAmmar", Country: "Syria", Phone: "+963-555-123456", Endpoint: "https://fa.partner.example.com/bookings"},
	{Code: "AS", Name: "Airsalka", Country: "Syria", Phone: "+963-555-654321", Endpoint: "https://as.partner.example.com/bookings"},
	{Code: "AA", Name: "API Airlines", Country: "United Kingdom", Phone: "+44-800-987-6543", Endpoint: "https://aa.partner.example.com/bookings"},
}

// Seed runs the whole pipeline: airlines and airports first (independent,
// run in parallel), then flights referencing both, then bookings.
func (s *SeederService) Seed(ctx context.Context, airportsCSVPath string, airportLimit, numFlights, bookingsPerFlight int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.seedAirlines(gctx) })
	g.Go(func() error { return s.seedAirports(gctx, airportsCSVPath, airportLimit) })
	if err := g.Wait(); err != nil {
		return err
	}

	return s.seedFlights(ctx, numFlights, bookingsPerFlight)
}

func (s *SeederService) seedAirlines(ctx context.Context) error {
	for _, airline := range demoAirlines {
		a := airline
		err := s.airlines.Create(ctx, &a)
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			logging.Info("Airline already exists, skipping", "code", a.Code)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed airline %s: %w", a.Code, err)
		}
		logging.Info("Airline seeded", "code", a.Code, "name", a.Name)
	}
	return nil
}

func (s *SeederService) seedAirports(ctx context.Context, csvPath string, limit int) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open airports dataset: %w", err)
	}
	defer f.Close()

	result, err := s.importer.ImportCSV(ctx, f, limit)
	if err != nil {
		return err
	}
	logging.Info("Airports seeded", "imported", result.Imported, "skipped", result.Skipped)
	return nil
}

func (s *SeederService) seedFlights(ctx context.Context, numFlights, bookingsPerFlight int) error {
	airports, err := s.airports.List(ctx, repositories.AirportFilter{})
	if err != nil {
		return err
	}
	if len(airports) < 2 {
		return fmt.Errorf("need at least two airports to generate flights, have %d", len(airports))
	}

	airlines, err := s.airlines.List(ctx, repositories.AirlineFilter{})
	if err != nil {
		return err
	}
	if len(airlines) == 0 {
		return fmt.Errorf("no airlines to assign flights to")
	}

	for i := 0; i < numFlights; i++ {
		departure := airports[rand.IntN(len(airports))]
		destination := airports[rand.IntN(len(airports))]
		for destination.Ident == departure.Ident {
			destination = airports[rand.IntN(len(airports))]
		}

		airline := airlines[rand.IntN(len(airlines))]
		flightCode := fmt.Sprintf("%s%07d", airline.Code, rand.IntN(9000000)+1000000)

		departureTime := time.Now().Add(time.Duration(rand.IntN(1441)-720) * time.Hour).Truncate(time.Minute)
		arrivalTime := departureTime.Add(time.Duration(rand.IntN(1141)+60) * time.Minute)
		totalSeats := rand.IntN(491) + 10

		flight := models.Flight{
			FlightCode:       flightCode,
			DepartureIdent:   departure.Ident,
			DestinationIdent: destination.Ident,
			DepartureTime:    departureTime,
			ArrivalTime:      arrivalTime,
			DurationSeconds:  int64(arrivalTime.Sub(departureTime).Seconds()),
			BasePrice:        float64(rand.IntN(999000)+1000) / 100,
			TotalSeats:       totalSeats,
			AvailableSeats:   totalSeats,
			AirlineCode:      airline.Code,
		}

		err := s.flights.Create(ctx, &flight)
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			i--
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed flight %s: %w", flightCode, err)
		}

		if err := s.seedBookings(ctx, flight.FlightCode, rand.IntN(bookingsPerFlight+1)); err != nil {
			return err
		}
	}
	return nil
}

func (s *SeederService) seedBookings(ctx context.Context, flightCode string, numBookings int) error {
	created := 0
	for i := 0; i < numBookings; i++ {
		passport := int64(rand.IntN(90000000) + 10000000)
		_, err := s.ledger.CreateBooking(ctx, flightCode, passport)
		if errors.Is(err, apperrors.ErrCapacityExceeded) {
			break
		}
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed booking on %s: %w", flightCode, err)
		}
		created++
	}
	logging.Info("Bookings seeded", "flight_code", flightCode, "count", created)
	return nil
}
