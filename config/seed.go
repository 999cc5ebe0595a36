package config

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/luqihan/charityevents/internal/models"
)

var seedCategories = []string{
	"Fun Run",
	"Gala Dinner",
	"Silent Auction",
	"Concert",
	"Workshop",
	"Community Fair",
}

// Seed inserts the known categories and, on an empty events table, two
// sample events. Existing rows are left untouched.
func Seed(db *gorm.DB) error {
	categories := make(map[string]models.Category, len(seedCategories))
	for _, name := range seedCategories {
		var category models.Category
		err := db.Where("name = ?", name).FirstOrCreate(&category, models.Category{Name: name}).Error
		if err != nil {
			return err
		}
		categories[name] = category
	}

	var count int64
	if err := db.Model(&models.Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	events := []models.Event{
		{
			Name:            "City Marathon 2024",
			Description:     "Annual city marathon for heart disease research",
			FullDescription: "Join us for the annual City Marathon 2024! This event brings together runners of all levels to support heart disease research.",
			Date:            time.Date(2024, 12, 15, 8, 0, 0, 0, time.UTC),
			Location:        "Central Park",
			Purpose:         "Raise funds for Heart Foundation",
			TicketPrice:     decimal.NewFromFloat(50.00),
			GoalAmount:      decimal.NewFromFloat(50000.00),
			ProgressAmount:  decimal.NewFromFloat(32500.00),
			CategoryID:      categories["Fun Run"].ID,
			IsActive:        true,
		},
		{
			Name:            "Charity Gala Night",
			Description:     "An elegant evening to support local shelters",
			FullDescription: "Experience an unforgettable evening of fine dining, entertainment, and philanthropy at our annual Charity Gala Night.",
			Date:            time.Date(2024, 11, 20, 19, 0, 0, 0, time.UTC),
			Location:        "Grand Hotel Ballroom",
			Purpose:         "Support homeless shelters",
			TicketPrice:     decimal.NewFromFloat(150.00),
			GoalAmount:      decimal.NewFromFloat(20000.00),
			ProgressAmount:  decimal.NewFromFloat(12000.00),
			CategoryID:      categories["Gala Dinner"].ID,
			IsActive:        true,
		},
	}

	return db.Create(&events).Error
}
