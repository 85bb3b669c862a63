package models

import "time"

// Resident represents a person assigned to a location.
type Resident struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LocationID int64  `json:"location_id"`
}

// Timestamp represents a single presence event: a resident seen at a location at a point in time.
type Timestamp struct {
	ID         int64     `json:"id"`
	ResidentID int64     `json:"resident_id"`
	LocationID int64     `json:"location_id"`
	RecordedAt time.Time `json:"recorded_at"`
}
