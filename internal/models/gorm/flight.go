package gorm

import (
	"time"

	"airline-marketplace/authority/internal/apperrors"
)

// Flight owns the running count of its available seats. AvailableSeats is
// mutated only through the seat ledger's booking operations; any direct
// update must pass Validate first.
type Flight struct {
	FlightCode       string    `gorm:"column:flight_code;primaryKey;type:varchar(10)" json:"flight_code"`
	DepartureIdent   string    `gorm:"column:departure_ident;type:varchar(10);not null;index" json:"departure_ident"`
	DestinationIdent string    `gorm:"column:destination_ident;type:varchar(10);not null;index" json:"destination_ident"`
	DepartureTime    time.Time `gorm:"column:departure_time;not null" json:"departure_time"`
	ArrivalTime      time.Time `gorm:"column:arrival_time;not null" json:"arrival_time"`
	DurationSeconds  int64     `gorm:"column:duration_seconds" json:"duration_seconds"`
	BasePrice        float64   `gorm:"column:base_price;not null" json:"base_price"`
	TotalSeats       int       `gorm:"column:total_seats;not null" json:"total_seats"`
	AvailableSeats   int       `gorm:"column:available_seats;not null" json:"available_seats"`
	AirlineCode      string    `gorm:"column:airline_code;type:varchar(10);not null;index" json:"airline_code"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`

	DepartureAirport   Airport `gorm:"foreignKey:DepartureIdent;references:Ident" json:"-"`
	DestinationAirport Airport `gorm:"foreignKey:DestinationIdent;references:Ident" json:"-"`
	Airline            Airline `gorm:"foreignKey:AirlineCode;references:Code" json:"-"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

// Validate enforces the flight invariants. It is called before any insert or
// direct update; a violation rejects the write in full.
func (f *Flight) Validate() error {
	if f.FlightCode == "" {
		return apperrors.ErrInvalidArgument
	}
	if f.DepartureIdent == f.DestinationIdent {
		return apperrors.ErrInvalidArgument
	}
	if !f.DepartureTime.Before(f.ArrivalTime) {
		return apperrors.ErrInvalidArgument
	}
	if f.BasePrice < 0 {
		return apperrors.ErrInvalidArgument
	}
	if f.TotalSeats < 0 {
		return apperrors.ErrInvalidArgument
	}
	if f.AvailableSeats < 0 || f.AvailableSeats > f.TotalSeats {
		return apperrors.ErrInvariantViolation
	}
	return nil
}

// Duration returns the derived flight duration.
func (f *Flight) Duration() time.Duration {
	return f.ArrivalTime.Sub(f.DepartureTime)
}
