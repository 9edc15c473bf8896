package services

import (
	"context"
	"time"

	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/constants"
	"airline-marketplace/authority/internal/db/repositories"
	models "airline-marketplace/authority/internal/models/gorm"
)

// AirportsService serves airport reads. Airports only change on a dataset
// import, so the unfiltered list caches well.
type AirportsService struct {
	airports *repositories.AirportRepository
	cache    common.CacheInterface
	cacheTTL time.Duration
}

// NewAirportsService creates a new airports service. cache may be nil.
func NewAirportsService(airports *repositories.AirportRepository, cache common.CacheInterface, cacheTTL time.Duration) *AirportsService {
	return &AirportsService{airports: airports, cache: cache, cacheTTL: cacheTTL}
}

// List returns airports matching the filter.
func (s *AirportsService) List(ctx context.Context, filter repositories.AirportFilter) ([]models.Airport, error) {
	if s.cache != nil && filter == (repositories.AirportFilter{}) {
		val, err := s.cache.GetOrSet(string(constants.CachePrefixAirportList), s.cacheTTL, func() (any, error) {
			return s.airports.List(ctx, filter)
		})
		if err != nil {
			return nil, err
		}
		if airports, ok := val.([]models.Airport); ok {
			return airports, nil
		}
	}
	return s.airports.List(ctx, filter)
}

// Get returns one airport by ident.
func (s *AirportsService) Get(ctx context.Context, ident string) (*models.Airport, error) {
	return s.airports.FindByIdent(ctx, ident)
}

// Invalidate drops the cached airport list. Called after a dataset import.
func (s *AirportsService) Invalidate() {
	if s.cache != nil {
		s.cache.Delete(string(constants.CachePrefixAirportList))
	}
}
