package service

import (
	"context"
	"fmt"

	"locations-api/internal/models"
)

// LocationService contains the core business logic for location CRUD operations
type LocationService struct {
	repo LocationRepository
}

// Repository interface for dependency injection
type LocationRepository interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	CreateLocation(ctx context.Context, loc models.Location) error
	GetLocation(ctx context.Context, id int64) (*models.Location, error)
}

// NewLocationService creates a new location service
func NewLocationService(repo LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// List returns all known locations
func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}

	return locations, nil
}

// Create stores a new location. The record is forwarded verbatim; field
// interpretation belongs to the storage layer.
func (s *LocationService) Create(ctx context.Context, loc models.Location) error {
	if err := s.repo.CreateLocation(ctx, loc); err != nil {
		return fmt.Errorf("service: failed to create location: %w", err)
	}

	return nil
}

// Get returns a single location by id
func (s *LocationService) Get(ctx context.Context, id int64) (*models.Location, error) {
	if id < 1 {
		return nil, fmt.Errorf("service: invalid location id: %d", id)
	}

	loc, err := s.repo.GetLocation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get location: %w", err)
	}

	return loc, nil
}
