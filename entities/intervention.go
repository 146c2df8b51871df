package entities

import "time"

type Intervention struct {
	ID     string `gorm:"primaryKey" json:"id"`
	TreeID string `gorm:"index" json:"tree_id"`
	Type   string `json:"type"` // watering|treatment|pruning|harvest|fertilization|observation
	Notes  string `json:"notes,omitempty"`
	Date   string `json:"date"` // defaults to creation instant when absent

	CreatedAt time.Time `json:"created_at"`
}
