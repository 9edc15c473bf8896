package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/db/repositories"
)

func TestAirportsService_List_CacheInvalidatedByImport(t *testing.T) {
	gdb := setupTestDB(t)
	airports := repositories.NewAirportRepository(gdb)
	locations := repositories.NewLocationRepository(gdb)
	importer := NewAirportImporterService(airports, locations)

	cache := common.NewCacheService(60, 120)
	svc := NewAirportsService(airports, cache, time.Minute)
	importer.OnDatasetReplaced(svc.Invalidate)

	if _, err := importer.ImportCSV(context.Background(), strings.NewReader(airportCSV), 0); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	first, err := svc.List(context.Background(), repositories.AirportFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("Expected 3 airports, got %d", len(first))
	}

	// A replacement import must drop the cached list.
	smaller := `ident,name,municipality,iso_country,iso_region,size_type,latitude,longitude,elevation,continent
VCBI,Bandaranaike International Airport,Colombo,LK,LK-1,large_airport,7.1808,79.8841,30,AS
`
	if _, err := importer.ImportCSV(context.Background(), strings.NewReader(smaller), 0); err != nil {
		t.Fatalf("Second import failed: %v", err)
	}

	second, err := svc.List(context.Background(), repositories.AirportFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(second) != 1 {
		t.Errorf("Expected fresh list of 1 airport after import, got %d", len(second))
	}
}
