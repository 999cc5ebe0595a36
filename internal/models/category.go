package models

import (
	"time"
)

// Category groups events by kind, e.g. "Fun Run" or "Gala Dinner".
// Categories are seeded at startup and read-only afterwards.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}
