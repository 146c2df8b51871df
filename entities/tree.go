package entities

import "time"

type Tree struct {
	ID       string `gorm:"primaryKey" json:"id"`
	FarmID   string `gorm:"index;uniqueIndex:idx_farm_position" json:"farm_id"`
	Position string `gorm:"uniqueIndex:idx_farm_position" json:"position"` // e.g., "A1", "B5"

	Species   string     `json:"species"`
	Variety   string     `json:"variety,omitempty"`
	PlantDate string     `json:"plant_date"` // YYYY-MM-DD or full ISO timestamp
	Health    string     `json:"health"`     // good|fair|poor|dead
	Notes     string     `json:"notes,omitempty"`
	Photo     string     `json:"photo,omitempty"` // mirror of the last photo in Photos
	Photos    []string   `gorm:"serializer:json" json:"photos"`
	GPSCoords *GPSCoords `gorm:"serializer:json" json:"gps_coords,omitempty"`
	Synced    bool       `json:"synced"`
	Origin    string     `json:"origin,omitempty"` // e.g., "duplicate"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
