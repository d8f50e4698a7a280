package domain

import "time"

// Hospital is a donation center. Coordinates are stored GeoJSON-style as
// [lng, lat].
type Hospital struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	Coordinates   []float64 `json:"coordinates,omitempty"`
	Verified      bool      `json:"verified"`
	ContactPhone  string    `json:"contact_phone,omitempty"`
	DailyCapacity int       `json:"daily_capacity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
