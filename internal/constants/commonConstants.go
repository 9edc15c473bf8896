package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixFlightList  CachePrefix = "FLIGHT_LIST"
	CachePrefixAirportList CachePrefix = "AIRPORT_LIST"
)

const (
	// BookingRefAlphabet is the symbol set booking references are drawn from.
	BookingRefAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// BookingRefLength is the fixed length of a booking reference.
	BookingRefLength = 10

	// BookingRefMaxAttempts bounds the collision re-sample loop.
	BookingRefMaxAttempts = 5
)
