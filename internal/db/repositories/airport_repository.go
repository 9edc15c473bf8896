package repositories

import (
	"context"
	"errors"

	"airline-marketplace/authority/internal/apperrors"
	models "airline-marketplace/authority/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportFilter narrows airport list queries. Text matches are
// case-insensitive contains; numeric bounds are inclusive.
type AirportFilter struct {
	City         string
	Country      string
	ISOCountry   string
	ISORegion    string
	Municipality string
	SizeType     string
	Continent    string
	LatitudeMin  *float64
	LatitudeMax  *float64
	LongitudeMin *float64
	LongitudeMax *float64
	ElevationMin *int64
	ElevationMax *int64
}

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// List returns airports matching the filter.
func (r *AirportRepository) List(ctx context.Context, filter AirportFilter) ([]models.Airport, error) {
	q := r.db.WithContext(ctx).Model(&models.Airport{})

	if filter.City != "" || filter.Country != "" {
		q = q.Joins("JOIN cities ON cities.id = airports.city_id")
		if filter.City != "" {
			q = q.Where("LOWER(cities.name) LIKE LOWER(?)", "%"+filter.City+"%")
		}
		if filter.Country != "" {
			q = q.Where("LOWER(cities.country_name) LIKE LOWER(?)", "%"+filter.Country+"%")
		}
	}
	if filter.ISOCountry != "" {
		q = q.Where("LOWER(iso_country) LIKE LOWER(?)", "%"+filter.ISOCountry+"%")
	}
	if filter.ISORegion != "" {
		q = q.Where("LOWER(iso_region) LIKE LOWER(?)", "%"+filter.ISORegion+"%")
	}
	if filter.Municipality != "" {
		q = q.Where("LOWER(municipality) LIKE LOWER(?)", "%"+filter.Municipality+"%")
	}
	if filter.SizeType != "" {
		q = q.Where("LOWER(size_type) LIKE LOWER(?)", "%"+filter.SizeType+"%")
	}
	if filter.Continent != "" {
		q = q.Where("LOWER(continent) LIKE LOWER(?)", "%"+filter.Continent+"%")
	}
	if filter.LatitudeMin != nil {
		q = q.Where("latitude >= ?", *filter.LatitudeMin)
	}
	if filter.LatitudeMax != nil {
		q = q.Where("latitude <= ?", *filter.LatitudeMax)
	}
	if filter.LongitudeMin != nil {
		q = q.Where("longitude >= ?", *filter.LongitudeMin)
	}
	if filter.LongitudeMax != nil {
		q = q.Where("longitude <= ?", *filter.LongitudeMax)
	}
	if filter.ElevationMin != nil {
		q = q.Where("elevation >= ?", *filter.ElevationMin)
	}
	if filter.ElevationMax != nil {
		q = q.Where("elevation <= ?", *filter.ElevationMax)
	}

	var airports []models.Airport
	if err := q.Order("ident").Find(&airports).Error; err != nil {
		return nil, err
	}
	return airports, nil
}

// FindByIdent finds an airport by ident code (case-insensitive)
func (r *AirportRepository) FindByIdent(ctx context.Context, ident string) (*models.Airport, error) {
	var airport models.Airport
	err := r.db.WithContext(ctx).
		Where("UPPER(ident) = UPPER(?)", ident).
		First(&airport).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &airport, nil
}

// BatchInsert inserts multiple airports
func (r *AirportRepository) BatchInsert(ctx context.Context, airports []models.Airport) error {
	return r.db.WithContext(ctx).
		CreateInBatches(airports, 100).Error
}

// DeleteAll deletes all airports (useful for re-importing)
func (r *AirportRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.Airport{}).Error
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Airport{}).Count(&count).Error
	return count, err
}
