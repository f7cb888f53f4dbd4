package database

import (
	"fmt"

	"github.com/classroomquiz/backend/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the primary Postgres store. A missing or unreachable
// database is not fatal: the returned handle is nil and the activity store
// runs on its in-memory tier alone, so submissions and statistics keep
// working through an outage.
func NewDatabase(cfg *config.Config) *gorm.DB {
	if cfg.Database.Host == "" {
		log.Warn().Msg("No database configured, running with in-memory storage only")
		return nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Warn().Err(err).Msg("Database unavailable, falling back to in-memory storage")
		return nil
	}

	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("Connected to database")
	return db
}
