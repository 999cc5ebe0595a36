package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/luqihan/charityevents/internal/models"
)

// maxOpenConns caps the number of parallel database connections.
// Requests beyond the cap queue on the pool.
const maxOpenConns = 10

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string
}

func Load() *Config {
	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPath:     os.Getenv("DB_PATH"),
	}

	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "charityevents.db")
	}

	return cfg
}

// Open connects to the database and migrates the schema. If DB_HOST is
// set a postgres connection is used, otherwise a local sqlite file.
func Open(cfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	var db *gorm.DB
	var err error
	if cfg.DBHost != "" {
		log.Debug().Msg("DB_HOST is set, using postgres")
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	} else {
		log.Debug().Str("path", cfg.DBPath).Msg("DB_HOST is not set, using sqlite")
		if mkErr := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm); mkErr != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", mkErr)
		}
		db, err = gorm.Open(sqlite.Open(cfg.DBPath+"?_pragma=foreign_keys(1)"), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	if err := db.AutoMigrate(&models.Category{}, &models.Event{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
