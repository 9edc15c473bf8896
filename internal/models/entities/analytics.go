package entities

// AirlinePassengers is one row of the passengers-per-airline report.
type AirlinePassengers struct {
	AirlineName string `db:"airline_name" json:"airline_name"`
	Passengers  int64  `db:"passengers" json:"passengers"`
}

// FlightIncome is one row of the flight income report. Income is derived as
// (total_seats - available_seats) * base_price.
type FlightIncome struct {
	FlightCode     string  `db:"flight_code" json:"flight_code"`
	AirlineName    string  `db:"airline_name" json:"airline_name"`
	DepartureIdent string  `db:"departure_ident" json:"departure_ident"`
	Income         float64 `db:"income" json:"income"`
}
