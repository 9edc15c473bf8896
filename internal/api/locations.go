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

// LocationDirectory is the country/city surface the handlers depend on.
type LocationDirectory interface {
	ListCountries(ctx context.Context, filter repositories.CountryFilter) ([]models.Country, error)
	CreateCountry(ctx context.Context, country *models.Country) error
	ListCities(ctx context.Context, filter repositories.CityFilter) ([]models.City, error)
	CreateCity(ctx context.Context, city *models.City) error
}

// ListCountriesHandler handles GET /api/v1/countries
func ListCountriesHandler(locations LocationDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter := repositories.CountryFilter{
			Name:      r.URL.Query().Get("name"),
			Continent: r.URL.Query().Get("continent"),
		}

		list, err := locations.ListCountries(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch countries", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched countries", list)
	}
}

// CreateCountryHandler handles POST /api/v1/countries
func CreateCountryHandler(locations LocationDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateCountryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			common.RespondError(w, initTime, nil, "Country name is required", http.StatusBadRequest)
			return
		}

		country := models.Country{Name: req.Name, Continent: req.Continent}
		if err := locations.CreateCountry(r.Context(), &country); err != nil {
			common.RespondError(w, initTime, err, "", StatusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Country created", country, http.StatusCreated)
	}
}

// ListCitiesHandler handles GET /api/v1/cities
func ListCitiesHandler(locations LocationDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter := repositories.CityFilter{
			Name:    r.URL.Query().Get("name"),
			Country: r.URL.Query().Get("country"),
		}

		list, err := locations.ListCities(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch cities", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched cities", list)
	}
}

// CreateCityHandler handles POST /api/v1/cities
func CreateCityHandler(locations LocationDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateCityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Country == "" {
			common.RespondError(w, initTime, nil, "City name and country are required", http.StatusBadRequest)
			return
		}

		city := models.City{Name: req.Name, CountryName: req.Country}
		if err := locations.CreateCity(r.Context(), &city); err != nil {
			common.RespondError(w, initTime, err, "", StatusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "City created", city, http.StatusCreated)
	}
}
