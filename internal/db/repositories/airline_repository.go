package repositories

import (
	"context"
	"errors"

	"airline-marketplace/authority/internal/apperrors"
	models "airline-marketplace/authority/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirlineFilter narrows airline list queries. Text matches are
// case-insensitive contains, mirroring the public search surface.
type AirlineFilter struct {
	Code    string
	Name    string
	Country string
}

// AirlineRepository handles airline table operations
type AirlineRepository struct {
	db *gormlib.DB
}

// NewAirlineRepository creates a new airline repository
func NewAirlineRepository(db *gormlib.DB) *AirlineRepository {
	return &AirlineRepository{db: db}
}

// List returns airlines matching the filter.
func (r *AirlineRepository) List(ctx context.Context, filter AirlineFilter) ([]models.Airline, error) {
	q := r.db.WithContext(ctx).Model(&models.Airline{})
	if filter.Code != "" {
		q = q.Where("UPPER(code) = UPPER(?)", filter.Code)
	}
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Country != "" {
		q = q.Where("LOWER(country) LIKE LOWER(?)", "%"+filter.Country+"%")
	}

	var airlines []models.Airline
	if err := q.Order("code").Find(&airlines).Error; err != nil {
		return nil, err
	}
	return airlines, nil
}

// FindByCode finds an airline by its code.
func (r *AirlineRepository) FindByCode(ctx context.Context, code string) (*models.Airline, error) {
	var airline models.Airline
	err := r.db.WithContext(ctx).
		Where("UPPER(code) = UPPER(?)", code).
		First(&airline).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &airline, nil
}

// Create inserts a new airline. Duplicate code, name or phone surfaces as
// AlreadyExists.
func (r *AirlineRepository) Create(ctx context.Context, airline *models.Airline) error {
	err := r.db.WithContext(ctx).Create(airline).Error
	if errors.Is(err, gormlib.ErrDuplicatedKey) {
		return apperrors.ErrAlreadyExists
	}
	return err
}

// Update persists phone/endpoint changes for an existing airline.
func (r *AirlineRepository) Update(ctx context.Context, airline *models.Airline) error {
	res := r.db.WithContext(ctx).Model(&models.Airline{}).
		Where("code = ?", airline.Code).
		Updates(map[string]any{
			"phone":    airline.Phone,
			"endpoint": airline.Endpoint,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes an airline and cascades to its flights and their bookings.
func (r *AirlineRepository) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var airline models.Airline
		if err := tx.Where("UPPER(code) = UPPER(?)", code).First(&airline).Error; err != nil {
			if errors.Is(err, gormlib.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		var flightCodes []string
		if err := tx.Model(&models.Flight{}).
			Where("airline_code = ?", airline.Code).
			Pluck("flight_code", &flightCodes).Error; err != nil {
			return err
		}

		if len(flightCodes) > 0 {
			if err := tx.Where("flight_code IN ?", flightCodes).
				Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Where("airline_code = ?", airline.Code).
				Delete(&models.Flight{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&airline).Error
	})
}
