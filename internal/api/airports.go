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

// AirportDirectory is the airport read surface.
type AirportDirectory interface {
	List(ctx context.Context, filter repositories.AirportFilter) ([]models.Airport, error)
}

// AirportImporter replaces the airport dataset from an external source.
type AirportImporter interface {
	ImportFromURL(ctx context.Context, url string, limit int) (*dtos.AirportImportResponse, error)
}

// ListAirportsHandler handles GET /api/v1/airports
func ListAirportsHandler(airports AirportDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		filter := repositories.AirportFilter{
			City:         q.Get("city"),
			Country:      q.Get("country"),
			ISOCountry:   q.Get("iso_country"),
			ISORegion:    q.Get("iso_region"),
			Municipality: q.Get("municipality"),
			SizeType:     q.Get("size_type"),
			Continent:    q.Get("continent"),
			LatitudeMin:  queryFloat(q, "latitude_min"),
			LatitudeMax:  queryFloat(q, "latitude_max"),
			LongitudeMin: queryFloat(q, "longitude_min"),
			LongitudeMax: queryFloat(q, "longitude_max"),
			ElevationMin: queryInt64(q, "elevation_min"),
			ElevationMax: queryInt64(q, "elevation_max"),
		}

		list, err := airports.List(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch airports", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airports", list)
	}
}

type syncAirportsRequest struct {
	URL   string `json:"url"`
	Limit int    `json:"limit"`
}

// SyncAirportsHandler handles POST /admin/data/sync-airports. The body is
// optional; with no URL the configured dataset source is used.
func SyncAirportsHandler(importer AirportImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req syncAirportsRequest
		if r.Body != nil {
			// An empty body is fine here.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		result, err := importer.ImportFromURL(r.Context(), req.URL, req.Limit)
		if err != nil {
			common.RespondError(w, initTime, err, "", StatusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Airport dataset synced", result)
	}
}
