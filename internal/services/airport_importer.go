package services

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"airline-marketplace/authority/internal/db/repositories"
	"airline-marketplace/authority/internal/logging"
	"airline-marketplace/authority/internal/models/dtos"
	models "airline-marketplace/authority/internal/models/gorm"
)

// AirportImporterService loads the airport dataset, creating countries and
// cities on demand. An import replaces the existing airport set.
type AirportImporterService struct {
	airports  *repositories.AirportRepository
	locations *repositories.LocationRepository

	onReplace func()
}

// NewAirportImporterService creates a new airport importer
func NewAirportImporterService(airports *repositories.AirportRepository, locations *repositories.LocationRepository) *AirportImporterService {
	return &AirportImporterService{airports: airports, locations: locations}
}

// OnDatasetReplaced registers a hook run after a successful import, used to
// invalidate cached airport reads.
func (s *AirportImporterService) OnDatasetReplaced(fn func()) {
	s.onReplace = fn
}

// ImportCSV reads airport rows from a CSV dataset. Expected header:
// ident,name,municipality,iso_country,iso_region,size_type,latitude,
// longitude,elevation,continent. Rows without an ident or name are skipped.
func (s *AirportImporterService) ImportCSV(ctx context.Context, reader io.Reader, limit int) (*dtos.AirportImportResponse, error) {
	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no airport data found in CSV")
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"ident", "name"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	rows := records[1:]
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	skipped := 0
	airports := make([]models.Airport, 0, len(rows))
	for _, row := range rows {
		ident := strings.ToUpper(field(row, "ident"))
		name := field(row, "name")
		if ident == "" || name == "" {
			skipped++
			continue
		}

		city, err := s.locations.FindOrCreateCity(ctx,
			field(row, "municipality"),
			field(row, "iso_country"),
			field(row, "continent"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve city for %s: %w", ident, err)
		}

		var elevation sql.NullInt64
		if raw := field(row, "elevation"); raw != "" {
			if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
				elevation = sql.NullInt64{Int64: v, Valid: true}
			}
		}
		latitude, _ := strconv.ParseFloat(field(row, "latitude"), 64)
		longitude, _ := strconv.ParseFloat(field(row, "longitude"), 64)

		airports = append(airports, models.Airport{
			Ident:        ident,
			Name:         name,
			CityID:       city.ID,
			ISOCountry:   field(row, "iso_country"),
			ISORegion:    field(row, "iso_region"),
			Municipality: field(row, "municipality"),
			SizeType:     field(row, "size_type"),
			Latitude:     latitude,
			Longitude:    longitude,
			Elevation:    elevation,
			Continent:    field(row, "continent"),
		})
	}

	if len(airports) == 0 {
		return nil, fmt.Errorf("no valid airports found after parsing")
	}

	if err := s.airports.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete existing airports: %w", err)
	}
	if err := s.airports.BatchInsert(ctx, airports); err != nil {
		return nil, fmt.Errorf("failed to insert airports: %w", err)
	}

	total, err := s.airports.Count(ctx)
	if err != nil {
		return nil, err
	}

	if s.onReplace != nil {
		s.onReplace()
	}

	logging.Info("Airport import complete",
		"imported", len(airports),
		"skipped", skipped,
	)

	return &dtos.AirportImportResponse{
		Imported: len(airports),
		Skipped:  skipped,
		Total:    total,
	}, nil
}

// ImportFromURL fetches the dataset over HTTP and imports it. Used by the
// admin sync endpoint; the source defaults to the AIRPORTS_DATASET_URL
// environment variable.
func (s *AirportImporterService) ImportFromURL(ctx context.Context, url string, limit int) (*dtos.AirportImportResponse, error) {
	if url == "" {
		url = os.Getenv("AIRPORTS_DATASET_URL")
	}
	if url == "" {
		return nil, fmt.Errorf("no airport dataset URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch airport dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch airport dataset: HTTP %d", resp.StatusCode)
	}
	return s.ImportCSV(ctx, resp.Body, limit)
}
