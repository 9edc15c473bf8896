package api

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/models/entities"
)

var startTime = time.Now()

// HealthCheckHandler reports service uptime and database connectivity.
func HealthCheckHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		dbStatus := entities.ServiceStatus{Status: "up"}
		if db == nil {
			dbStatus = entities.ServiceStatus{Status: "down", Details: "not configured"}
		} else if err := db.PingContext(r.Context()); err != nil {
			dbStatus = entities.ServiceStatus{Status: "down", Details: err.Error()}
		}

		resp := entities.HealthCheckResponse{
			Status: "healthy",
			Uptime: time.Since(startTime).Round(time.Second).String(),
			Services: map[string]entities.ServiceStatus{
				"database": dbStatus,
			},
		}
		code := http.StatusOK
		if dbStatus.Status != "up" {
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
		}

		common.RespondSuccess(w, initTime, "Health check", resp, code)
	}
}
