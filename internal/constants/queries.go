package constants

const (
	// PassengersPerAirlineToday counts live bookings per airline for flights
	// departing on the given date.
	PassengersPerAirlineToday = `
	SELECT a.name AS airline_name, COUNT(b.booking_ref) AS passengers
	FROM bookings b
	JOIN flights f ON f.flight_code = b.flight_code
	JOIN airlines a ON a.code = f.airline_code
	WHERE DATE(f.departure_time) = DATE(?)
	GROUP BY a.name
	ORDER BY passengers DESC
	`

	// FlightIncome derives income per flight from sold seats.
	FlightIncome = `
	SELECT f.flight_code,
	       a.name AS airline_name,
	       f.departure_ident,
	       (f.total_seats - f.available_seats) * f.base_price AS income
	FROM flights f
	JOIN airlines a ON a.code = f.airline_code
	ORDER BY income DESC
	`
)
