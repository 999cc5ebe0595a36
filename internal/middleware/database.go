package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Database injects the database handle into the request context so
// handlers can pick it up with GetDB.
func Database(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}

// GetDB returns the database handle set by Database, or nil if the
// middleware is not installed.
func GetDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get("db")
	if !exists {
		return nil
	}
	return db.(*gorm.DB)
}
