package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a single charity event. Every event belongs to exactly one
// category; the foreign key is enforced by the database.
type Event struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"not null"`
	Description     string          `json:"description"`
	FullDescription string          `json:"full_description"`
	Date            time.Time       `json:"date" gorm:"not null;index"`
	Location        string          `json:"location" gorm:"not null"`
	Purpose         string          `json:"purpose"`
	TicketPrice     decimal.Decimal `json:"ticket_price" gorm:"type:DECIMAL(10,2);default:0.00"`
	GoalAmount      decimal.Decimal `json:"goal_amount" gorm:"type:DECIMAL(10,2)"`
	ProgressAmount  decimal.Decimal `json:"progress_amount" gorm:"type:DECIMAL(10,2);default:0.00"`
	CategoryID      uint            `json:"category_id" gorm:"not null"`
	Category        Category        `json:"-"`
	IsActive        bool            `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time       `json:"created_at"`

	// CategoryName is filled by the joined selects in the handlers.
	// It is not a column of the events table.
	CategoryName string `json:"category_name" gorm:"->;-:migration"`
}
