package db

import (
	"piggie_backend/internal/config" // Application configuration
	"piggie_backend/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM (local default)
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to the configured database (MySQL in deployment, SQLite for
// local development)
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "mysql" {
		return gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{}) // MySQL connection
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{}) // SQLite connection
}

// Migrate performs automatic migration for the database schema
func Migrate(database *gorm.DB) {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err := database.AutoMigrate(
		&domain.User{},         // Users
		&domain.Wallet{},       // Wallets
		&domain.Allocation{},   // Allocation percentages
		&domain.Goal{},         // Savings goals
		&domain.Transaction{},  // Bank transactions
		&domain.Roundup{},      // Round-up audit records
		&domain.PlaidItem{},    // Linked bank connections
		&domain.MerchantRule{}, // Per-merchant auto round-up rules
		&domain.Event{},        // Analytics events
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
