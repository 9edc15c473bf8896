package constants

const (
	MsgFlightNotFound   = "Flight not found"
	MsgBookingNotFound  = "Booking not found"
	MsgAirlineNotFound  = "Airline not found"
	MsgDuplicateBooking = "A booking for this flight and passport already exists"
	MsgFlightSoldOut    = "Cannot create a booking for a flight with no available seats"
	MsgSeatBoundsBroken = "Available seats cannot exceed total seats"
)
