package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"airline-marketplace/authority/internal/apperrors"
	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/constants"
	"airline-marketplace/authority/internal/db/repositories"
	"airline-marketplace/authority/internal/models/dtos"
	models "airline-marketplace/authority/internal/models/gorm"
)

// AirlineDirectory is the airline surface the handlers depend on.
type AirlineDirectory interface {
	List(ctx context.Context, filter repositories.AirlineFilter) ([]models.Airline, error)
	Create(ctx context.Context, airline *models.Airline) error
	Update(ctx context.Context, airline *models.Airline) error
	Delete(ctx context.Context, code string) error
	FindByCode(ctx context.Context, code string) (*models.Airline, error)
}

var airlinePhoneRe = regexp.MustCompile(`^0\d{10}$`)

func validateAirlinePhone(phone string) string {
	if !airlinePhoneRe.MatchString(phone) {
		return "Phone must be 11 digits and start with 0"
	}
	return ""
}

// ListAirlinesHandler handles GET /api/v1/airlines
func ListAirlinesHandler(airlines AirlineDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		filter := repositories.AirlineFilter{
			Code:    q.Get("code"),
			Name:    q.Get("name"),
			Country: q.Get("country"),
		}

		list, err := airlines.List(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch airlines", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airlines", list)
	}
}

// CreateAirlineHandler handles POST /api/v1/airlines
func CreateAirlineHandler(airlines AirlineDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateAirlineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		code := strings.ToUpper(strings.TrimSpace(req.Code))
		if len(code) != 2 && len(code) != 3 {
			common.RespondError(w, initTime, nil, "Airline code must be 2 or 3 characters", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Country == "" {
			common.RespondError(w, initTime, nil, "Name and country are required", http.StatusBadRequest)
			return
		}
		if msg := validateAirlinePhone(req.Phone); msg != "" {
			common.RespondError(w, initTime, nil, msg, http.StatusBadRequest)
			return
		}

		airline := models.Airline{
			Code:     code,
			Name:     req.Name,
			Country:  req.Country,
			Phone:    req.Phone,
			Endpoint: req.Endpoint,
		}

		if err := airlines.Create(r.Context(), &airline); err != nil {
			common.RespondError(w, initTime, err, "", StatusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Airline created", airline, http.StatusCreated)
	}
}

// UpdateAirlineHandler handles PATCH /api/v1/airlines
func UpdateAirlineHandler(airlines AirlineDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdateAirlineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Code == "" {
			common.RespondError(w, initTime, nil, "Airline code is required", http.StatusBadRequest)
			return
		}

		airline, err := airlines.FindByCode(r.Context(), req.Code)
		if err != nil {
			msg := ""
			if errors.Is(err, apperrors.ErrNotFound) {
				msg = constants.MsgAirlineNotFound
			}
			common.RespondError(w, initTime, err, msg, StatusForError(err))
			return
		}

		if req.Phone != nil {
			if msg := validateAirlinePhone(*req.Phone); msg != "" {
				common.RespondError(w, initTime, nil, msg, http.StatusBadRequest)
				return
			}
			airline.Phone = *req.Phone
		}
		if req.Endpoint != nil {
			airline.Endpoint = *req.Endpoint
		}

		if err := airlines.Update(r.Context(), airline); err != nil {
			common.RespondError(w, initTime, err, "", StatusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Airline updated", airline)
	}
}

// DeleteAirlineHandler handles DELETE /api/v1/airlines?code=
func DeleteAirlineHandler(airlines AirlineDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		code := r.URL.Query().Get("code")
		if code == "" {
			common.RespondError(w, initTime, nil, "Airline code is required", http.StatusBadRequest)
			return
		}

		if err := airlines.Delete(r.Context(), code); err != nil {
			common.RespondError(w, initTime, err, "", StatusForError(err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
