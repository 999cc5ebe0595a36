package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/luqihan/charityevents/internal/helpers"
	"github.com/luqihan/charityevents/internal/middleware"
	"github.com/luqihan/charityevents/internal/models"
)

// ListCategories returns all event categories, alphabetical by name.
func ListCategories(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var categories []models.Category
	err := db.Order("name ASC").Find(&categories).Error
	if err != nil {
		log.Error().Err(err).Msg("fetching categories failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch categories.")
		return
	}

	helpers.RespondWithData(c, categories)
}
