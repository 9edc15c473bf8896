package dtos

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// BookingResponse is returned from booking creation.
type BookingResponse struct {
	BookingRef     string `json:"booking_ref"`
	PassportNumber int64  `json:"passport_number"`
	FlightCode     string `json:"flight_code"`
}

// AirportImportResponse summarises one airport dataset import.
type AirportImportResponse struct {
	Imported int   `json:"imported"`
	Skipped  int   `json:"skipped"`
	Total    int64 `json:"total_airports"`
}
