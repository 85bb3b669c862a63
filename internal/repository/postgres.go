package repository

import (
	"context"
	"fmt"

	"locations-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListLocations returns all locations ordered by id
func (r *Repository) ListLocations(ctx context.Context) ([]models.Location, error) {
	sql := `
		SELECT id, name, address
		FROM locations
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// CreateLocation inserts a new location record
func (r *Repository) CreateLocation(ctx context.Context, loc models.Location) error {
	sql := `
		INSERT INTO locations (name, address)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, sql, loc.Name, loc.Address)
	if err != nil {
		return fmt.Errorf("repository: failed to insert location: %w", err)
	}

	return nil
}

// GetLocation returns a single location by id
func (r *Repository) GetLocation(ctx context.Context, id int64) (*models.Location, error) {
	sql := `
		SELECT id, name, address
		FROM locations
		WHERE id = $1
	`

	var loc models.Location
	err := r.db.QueryRow(ctx, sql, id).Scan(&loc.ID, &loc.Name, &loc.Address)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get location %d: %w", id, err)
	}

	return &loc, nil
}

// ListTimestampsRange returns presence timestamps for a location between start and end.
// The bounds arrive as opaque path strings; Postgres interprets them via the
// timestamptz cast, so this layer never assumes a format.
func (r *Repository) ListTimestampsRange(ctx context.Context, locationID int64, start, end string) ([]models.Timestamp, error) {
	sql := `
		SELECT id, resident_id, location_id, recorded_at
		FROM timestamps
		WHERE location_id = $1
		  AND recorded_at >= $2::timestamptz
		  AND recorded_at <= $3::timestamptz
		ORDER BY recorded_at
	`

	rows, err := r.db.Query(ctx, sql, locationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list timestamps in range: %w", err)
	}
	defer rows.Close()

	return scanTimestamps(rows)
}

// ListTimestampsToday returns presence timestamps for a location recorded today (server time)
func (r *Repository) ListTimestampsToday(ctx context.Context, locationID int64) ([]models.Timestamp, error) {
	sql := `
		SELECT id, resident_id, location_id, recorded_at
		FROM timestamps
		WHERE location_id = $1
		  AND recorded_at >= date_trunc('day', now())
		  AND recorded_at < date_trunc('day', now()) + interval '1 day'
		ORDER BY recorded_at
	`

	rows, err := r.db.Query(ctx, sql, locationID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list today's timestamps: %w", err)
	}
	defer rows.Close()

	return scanTimestamps(rows)
}

// ListResidents returns all residents assigned to a location
func (r *Repository) ListResidents(ctx context.Context, locationID int64) ([]models.Resident, error) {
	sql := `
		SELECT id, name, location_id
		FROM residents
		WHERE location_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql, locationID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list residents: %w", err)
	}
	defer rows.Close()

	var residents []models.Resident
	for rows.Next() {
		var res models.Resident
		if err := rows.Scan(&res.ID, &res.Name, &res.LocationID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan resident: %w", err)
		}
		residents = append(residents, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return residents, nil
}

func scanTimestamps(rows pgx.Rows) ([]models.Timestamp, error) {
	var timestamps []models.Timestamp
	for rows.Next() {
		var ts models.Timestamp
		if err := rows.Scan(&ts.ID, &ts.ResidentID, &ts.LocationID, &ts.RecordedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan timestamp: %w", err)
		}
		timestamps = append(timestamps, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return timestamps, nil
}
