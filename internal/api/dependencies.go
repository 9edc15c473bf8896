package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/db/repositories"
	"airline-marketplace/authority/internal/metrics"
	"airline-marketplace/authority/internal/services"
)

// Dependencies bundles the wired repositories and services handed to route
// registration.
type Dependencies struct {
	Repo struct {
		Airlines  *repositories.AirlineRepository
		Airports  *repositories.AirportRepository
		Flights   *repositories.FlightRepository
		Bookings  *repositories.BookingRepository
		Locations *repositories.LocationRepository
		Analytics *repositories.AnalyticsRepository
	}
	Services struct {
		Ledger   *services.LedgerService
		Flights  *services.FlightsService
		Airports *services.AirportsService
		Importer *services.AirportImporterService
		Cache    common.CacheInterface
	}
}

// InitDependencies wires repositories and services against the given database
// handles. cacheSvc and notifier may be nil; sqlDB backs the raw-SQL
// analytics queries.
func InitDependencies(orm *gorm.DB, sqlDB *sqlx.DB, cacheSvc common.CacheInterface,
	notifier common.Notifier, reg *metrics.MetricsRegistry) *Dependencies {

	deps := &Dependencies{}

	deps.Repo.Airlines = repositories.NewAirlineRepository(orm)
	deps.Repo.Airports = repositories.NewAirportRepository(orm)
	deps.Repo.Flights = repositories.NewFlightRepository(orm)
	deps.Repo.Bookings = repositories.NewBookingRepository(orm)
	deps.Repo.Locations = repositories.NewLocationRepository(orm)
	deps.Repo.Analytics = repositories.NewAnalyticsRepository(sqlDB)

	deps.Services.Cache = cacheSvc
	deps.Services.Flights = services.NewFlightsService(
		deps.Repo.Flights,
		deps.Repo.Airports,
		deps.Repo.Airlines,
		cacheSvc,
		30*time.Second,
	).WithMetrics(reg)

	deps.Services.Ledger = services.NewLedgerService(orm, notifier).WithMetrics(reg)
	deps.Services.Ledger.OnSeatChange(deps.Services.Flights.Invalidate)
	deps.Services.Flights.WithLedger(deps.Services.Ledger)

	deps.Services.Airports = services.NewAirportsService(deps.Repo.Airports, cacheSvc, 10*time.Minute)

	deps.Services.Importer = services.NewAirportImporterService(deps.Repo.Airports, deps.Repo.Locations)
	deps.Services.Importer.OnDatasetReplaced(deps.Services.Airports.Invalidate)

	return deps
}
