package gorm

import "database/sql"

// Airport represents an airport record with geographic coordinates.
// Airports are effectively immutable once seeded.
type Airport struct {
	Ident        string        `gorm:"column:ident;primaryKey;type:varchar(10)" json:"ident"`
	Name         string        `gorm:"column:name;type:text;not null;uniqueIndex" json:"name"`
	CityID       uint          `gorm:"column:city_id;index" json:"-"`
	ISOCountry   string        `gorm:"column:iso_country;type:varchar(10)" json:"iso_country"`
	ISORegion    string        `gorm:"column:iso_region;type:varchar(20)" json:"iso_region"`
	Municipality string        `gorm:"column:municipality;type:varchar(100)" json:"municipality"`
	SizeType     string        `gorm:"column:size_type;type:varchar(30)" json:"size_type"`
	Latitude     float64       `gorm:"column:latitude;type:numeric(10,6)" json:"latitude"`
	Longitude    float64       `gorm:"column:longitude;type:numeric(10,6)" json:"longitude"`
	Elevation    sql.NullInt64 `gorm:"column:elevation;type:integer" json:"elevation"`
	Continent    string        `gorm:"column:continent;type:varchar(10)" json:"continent"`

	City City `gorm:"foreignKey:CityID" json:"-"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
