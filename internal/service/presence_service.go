package service

import (
	"context"
	"fmt"

	"locations-api/internal/models"
)

// PresenceService contains the core business logic for presence queries against a location
type PresenceService struct {
	repo PresenceRepository
}

// PresenceRepository interface for dependency injection
type PresenceRepository interface {
	ListTimestampsRange(ctx context.Context, locationID int64, start, end string) ([]models.Timestamp, error)
	ListTimestampsToday(ctx context.Context, locationID int64) ([]models.Timestamp, error)
	ListResidents(ctx context.Context, locationID int64) ([]models.Resident, error)
}

// NewPresenceService creates a new presence service
func NewPresenceService(repo PresenceRepository) *PresenceService {
	return &PresenceService{repo: repo}
}

// TimestampsRange returns presence timestamps for a location between start and end.
// start and end are opaque strings; the database decides whether they parse.
func (s *PresenceService) TimestampsRange(ctx context.Context, locationID int64, start, end string) ([]models.Timestamp, error) {
	if locationID < 1 {
		return nil, fmt.Errorf("service: invalid location id: %d", locationID)
	}

	timestamps, err := s.repo.ListTimestampsRange(ctx, locationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list timestamps in range: %w", err)
	}

	return timestamps, nil
}

// TimestampsToday returns presence timestamps recorded today for a location
func (s *PresenceService) TimestampsToday(ctx context.Context, locationID int64) ([]models.Timestamp, error) {
	if locationID < 1 {
		return nil, fmt.Errorf("service: invalid location id: %d", locationID)
	}

	timestamps, err := s.repo.ListTimestampsToday(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list today's timestamps: %w", err)
	}

	return timestamps, nil
}

// Residents returns the residents assigned to a location
func (s *PresenceService) Residents(ctx context.Context, locationID int64) ([]models.Resident, error) {
	if locationID < 1 {
		return nil, fmt.Errorf("service: invalid location id: %d", locationID)
	}

	residents, err := s.repo.ListResidents(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list residents: %w", err)
	}

	return residents, nil
}
