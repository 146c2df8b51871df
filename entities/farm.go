package entities

import "time"

type GPSCoords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Farm struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Name        string     `json:"name"`
	GPSCoords   *GPSCoords `gorm:"serializer:json" json:"gps_coords,omitempty"`
	GridRows    int        `json:"grid_rows"`
	GridCols    int        `json:"grid_cols"`
	Description string     `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
