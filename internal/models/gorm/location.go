package gorm

// Country is created on demand while ingesting airport data.
type Country struct {
	Name      string `gorm:"column:name;primaryKey;type:varchar(100)" json:"name"`
	Continent string `gorm:"column:continent;type:varchar(50)" json:"continent"`
}

// TableName specifies the table name for GORM
func (Country) TableName() string {
	return "countries"
}

// City belongs to a country; (name, country) is unique.
type City struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Name        string `gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_city_country" json:"name"`
	CountryName string `gorm:"column:country_name;type:varchar(100);not null;uniqueIndex:idx_city_country" json:"country"`

	Country Country `gorm:"foreignKey:CountryName;references:Name" json:"-"`
}

// TableName specifies the table name for GORM
func (City) TableName() string {
	return "cities"
}
