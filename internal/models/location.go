package models

// Location represents a tracked place residents can be present at, such as a room or a wing of a facility.
type Location struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
