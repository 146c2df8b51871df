package entities

import "time"

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Phone        string `gorm:"uniqueIndex" json:"phone"`
	PasswordHash string `json:"-"`
	IsDemo       bool   `json:"is_demo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
