package routes

import (
	"github.com/go-chi/chi/v5"

	"airline-marketplace/authority/internal/api"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/countries", api.ListCountriesHandler(deps.Repo.Locations))
		v1.Post("/countries", api.CreateCountryHandler(deps.Repo.Locations))

		v1.Get("/cities", api.ListCitiesHandler(deps.Repo.Locations))
		v1.Post("/cities", api.CreateCityHandler(deps.Repo.Locations))

		v1.Get("/airlines", api.ListAirlinesHandler(deps.Repo.Airlines))
		v1.Post("/airlines", api.CreateAirlineHandler(deps.Repo.Airlines))
		v1.Patch("/airlines", api.UpdateAirlineHandler(deps.Repo.Airlines))
		v1.Delete("/airlines", api.DeleteAirlineHandler(deps.Repo.Airlines))

		v1.Get("/airports", api.ListAirportsHandler(deps.Services.Airports))

		v1.Get("/flights", api.ListFlightsHandler(deps.Services.Flights))
		v1.Post("/flights", api.CreateFlightHandler(deps.Services.Flights))
		v1.Patch("/flights", api.UpdateFlightHandler(deps.Services.Flights))
		v1.Delete("/flights", api.DeleteFlightHandler(deps.Services.Flights))

		v1.Get("/bookings", api.ListBookingsHandler(deps.Repo.Bookings))
		v1.Post("/bookings", api.CreateBookingHandler(deps.Services.Ledger))
		v1.Delete("/bookings", api.CancelBookingHandler(deps.Services.Ledger))

		v1.Get("/analytics/passengers-per-airline", api.PassengersPerAirlineHandler(deps.Repo.Analytics))
		v1.Get("/analytics/flight-income", api.FlightIncomeHandler(deps.Repo.Analytics))
	})

	r.Post("/admin/data/sync-airports", api.SyncAirportsHandler(deps.Services.Importer))
}
