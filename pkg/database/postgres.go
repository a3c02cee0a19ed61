package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"notifyhub-backend/pkg/config"
)

// NewPostgresConnection opens the shared gorm connection pool. The dedicated
// LISTEN connection of the notify bridge is opened separately in pkg/pglisten.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	return db, nil
}
