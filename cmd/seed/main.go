package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"airline-marketplace/authority/internal/db"
	"airline-marketplace/authority/internal/db/repositories"
	"airline-marketplace/authority/internal/logging"
	"airline-marketplace/authority/internal/services"
)

func main() {
	csvPath := flag.String("airports-csv", "", "path to the airports CSV dataset (defaults to AIRPORTS_CSV_PATH)")
	airportLimit := flag.Int("airport-limit", 100, "maximum number of airport rows to import")
	numFlights := flag.Int("flights", 50, "number of random flights to create")
	bookingsPerFlight := flag.Int("bookings-per-flight", 5, "number of random bookings per flight")
	flag.Parse()

	_ = godotenv.Load()

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}
	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	orm, err := db.InitPostgresORM(db.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	path := *csvPath
	if path == "" {
		path = os.Getenv("AIRPORTS_CSV_PATH")
	}

	airlines := repositories.NewAirlineRepository(orm)
	airports := repositories.NewAirportRepository(orm)
	flights := repositories.NewFlightRepository(orm)
	locations := repositories.NewLocationRepository(orm)
	importer := services.NewAirportImporterService(airports, locations)

	// No notifier: seeded bookings must not ping the demo partner endpoints.
	ledger := services.NewLedgerService(orm, nil)

	seeder := services.NewSeederService(airlines, airports, flights, importer, ledger)
	if err := seeder.Seed(context.Background(), path, *airportLimit, *numFlights, *bookingsPerFlight); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	logging.Info("Seeding complete")
}
