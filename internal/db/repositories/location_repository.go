package repositories

import (
	"context"
	"errors"

	"airline-marketplace/authority/internal/apperrors"
	models "airline-marketplace/authority/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// CountryFilter narrows country list queries.
type CountryFilter struct {
	Name      string
	Continent string
}

// CityFilter narrows city list queries.
type CityFilter struct {
	Name    string
	Country string
}

// LocationRepository handles country and city table operations. The two are
// kept together because cities are never touched without their country.
type LocationRepository struct {
	db *gormlib.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gormlib.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// ListCountries returns countries matching the filter.
func (r *LocationRepository) ListCountries(ctx context.Context, filter CountryFilter) ([]models.Country, error) {
	q := r.db.WithContext(ctx).Model(&models.Country{})
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Continent != "" {
		q = q.Where("LOWER(continent) LIKE LOWER(?)", "%"+filter.Continent+"%")
	}

	var countries []models.Country
	if err := q.Order("name").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// CreateCountry inserts a country.
func (r *LocationRepository) CreateCountry(ctx context.Context, country *models.Country) error {
	err := r.db.WithContext(ctx).Create(country).Error
	if errors.Is(err, gormlib.ErrDuplicatedKey) {
		return apperrors.ErrAlreadyExists
	}
	return err
}

// ListCities returns cities matching the filter.
func (r *LocationRepository) ListCities(ctx context.Context, filter CityFilter) ([]models.City, error) {
	q := r.db.WithContext(ctx).Model(&models.City{})
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Country != "" {
		q = q.Where("LOWER(country_name) LIKE LOWER(?)", "%"+filter.Country+"%")
	}

	var cities []models.City
	if err := q.Order("name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// CreateCity inserts a city; its country must already exist.
func (r *LocationRepository) CreateCity(ctx context.Context, city *models.City) error {
	err := r.db.WithContext(ctx).Create(city).Error
	if errors.Is(err, gormlib.ErrDuplicatedKey) {
		return apperrors.ErrAlreadyExists
	}
	return err
}

// FindOrCreateCity resolves a (city, country) pair, creating both the country
// and the city on demand. Used by the airport importer.
func (r *LocationRepository) FindOrCreateCity(ctx context.Context, name, country, continent string) (*models.City, error) {
	var city models.City
	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Where(models.Country{Name: country}).
			Attrs(models.Country{Continent: continent}).
			FirstOrCreate(&models.Country{}).Error; err != nil {
			return err
		}
		return tx.Where(models.City{Name: name, CountryName: country}).
			FirstOrCreate(&city).Error
	})
	if err != nil {
		return nil, err
	}
	return &city, nil
}
