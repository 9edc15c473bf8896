package gorm

import "time"

// Booking represents a passenger's reservation on one flight. The reference
// is system-generated and the (flight_code, passport_number) pair is unique
// among live bookings. Flight code and passport number are immutable identity.
type Booking struct {
	BookingRef     string    `gorm:"column:booking_ref;primaryKey;type:varchar(10)" json:"booking_ref"`
	PassportNumber int64     `gorm:"column:passport_number;not null;uniqueIndex:idx_flight_passport" json:"passport_number"`
	FlightCode     string    `gorm:"column:flight_code;type:varchar(10);not null;uniqueIndex:idx_flight_passport" json:"flight_code"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`

	Flight Flight `gorm:"foreignKey:FlightCode;references:FlightCode" json:"-"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}
