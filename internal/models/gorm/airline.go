package gorm

import "time"

// Airline represents a carrier that owns flights. Endpoint is the address of
// the airline's own system, notified on booking changes.
type Airline struct {
	Code      string    `gorm:"column:code;primaryKey;type:varchar(10)" json:"code"`
	Name      string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex" json:"name"`
	Country   string    `gorm:"column:country;type:varchar(100)" json:"country"`
	Phone     string    `gorm:"column:phone;type:varchar(20);uniqueIndex" json:"phone"`
	Endpoint  string    `gorm:"column:endpoint;type:text" json:"endpoint"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (Airline) TableName() string {
	return "airlines"
}
