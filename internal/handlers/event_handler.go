package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/luqihan/charityevents/internal/helpers"
	"github.com/luqihan/charityevents/internal/middleware"
	"github.com/luqihan/charityevents/internal/models"
	"github.com/luqihan/charityevents/internal/query"
)

// eventQuery is the base query for every event read: the events table
// joined with its category so responses carry category_name.
func eventQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Event{}).
		Select("events.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = events.category_id")
}

// ListEvents returns every event, past and upcoming, newest first.
func ListEvents(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var events []models.Event
	err := eventQuery(db).Order("events.date DESC").Find(&events).Error
	if err != nil {
		log.Error().Err(err).Msg("fetching home page events failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch event data.")
		return
	}

	helpers.RespondWithList(c, events, len(events))
}

// SearchEvents returns upcoming events matching the optional category,
// location and date filters, soonest first.
func SearchEvents(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var filter query.EventFilter
	// Every field binds from a plain string, this cannot fail.
	_ = c.ShouldBindQuery(&filter)

	log.Debug().
		Str("category", filter.Category).
		Str("location", filter.Location).
		Str("date", filter.Date).
		Msg("searching events")

	q := query.Apply(eventQuery(db), filter.Criteria(time.Now()))

	var events []models.Event
	err := q.Order("events.date ASC").Find(&events).Error
	if err != nil {
		log.Error().Err(err).Msg("event search failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to search events.")
		return
	}

	helpers.RespondWithList(c, events, len(events))
}

// GetEvent returns a single event by its id, joined with its category.
func GetEvent(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	var event models.Event
	err = eventQuery(db).Where("events.id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		log.Error().Err(err).Uint64("id", id).Msg("fetching event details failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch event details.")
		return
	}

	helpers.RespondWithData(c, event)
}
