package dtos

import "time"

// CreateBookingRequest is the body of POST /api/v1/bookings. PassportNumber
// is a pointer so a missing field is distinguishable from passport 0.
type CreateBookingRequest struct {
	FlightCode     string `json:"flight_code"`
	PassportNumber *int64 `json:"passport_number"`
}

// CreateFlightRequest is the body of POST /api/v1/flights.
type CreateFlightRequest struct {
	FlightCode       string    `json:"flight_code"`
	DepartureIdent   string    `json:"departure_ident"`
	DestinationIdent string    `json:"destination_ident"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	BasePrice        float64   `json:"base_price"`
	TotalSeats       int       `json:"total_seats"`
	AirlineCode      string    `json:"airline_code"`
}

// UpdateFlightRequest is the body of PATCH /api/v1/flights. Only non-identity
// fields may change; nil fields are left untouched.
type UpdateFlightRequest struct {
	FlightCode     string   `json:"flight_code"`
	BasePrice      *float64 `json:"base_price"`
	TotalSeats     *int     `json:"total_seats"`
	AvailableSeats *int     `json:"available_seats"`
}

// CreateAirlineRequest is the body of POST /api/v1/airlines.
type CreateAirlineRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
	Endpoint string `json:"endpoint"`
}

// UpdateAirlineRequest is the body of PATCH /api/v1/airlines.
type UpdateAirlineRequest struct {
	Code     string  `json:"code"`
	Phone    *string `json:"phone"`
	Endpoint *string `json:"endpoint"`
}

// CreateCountryRequest is the body of POST /api/v1/countries.
type CreateCountryRequest struct {
	Name      string `json:"name"`
	Continent string `json:"continent"`
}

// CreateCityRequest is the body of POST /api/v1/cities.
type CreateCityRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}
