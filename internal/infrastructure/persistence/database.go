package persistence

import (
	"fmt"

	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/boutique/storefront/internal/domain/content"
	"github.com/boutique/storefront/internal/domain/identity"
	"github.com/boutique/storefront/internal/domain/trade"
	"github.com/boutique/storefront/internal/infrastructure/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database holds the database connection and provides methods for database
// operations. The default in-memory SQLite database makes all state transient
// per process, which is exactly the storefront's lifecycle.
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new database connection with the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return newDatabase(cfg, gormlogger.Default.LogMode(gormlogger.Silent))
}

// NewDatabaseWithLogger creates a new database connection with a custom logger
func NewDatabaseWithLogger(cfg *config.DatabaseConfig, logger gormlogger.Interface) (*Database, error) {
	return newDatabase(cfg, logger)
}

func newDatabase(cfg *config.DatabaseConfig, logger gormlogger.Interface) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	d := &Database{DB: db}
	if err := d.Migrate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Migrate creates or updates the schema for all models
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(
		&catalog.Product{},
		&catalog.Review{},
		&trade.Order{},
		&identity.Account{},
		&content.CustomPage{},
		&content.SocialPost{},
		&siteDocument{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Transaction executes a function within a database transaction
func (d *Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.DB.Transaction(fn)
}

// nextSeq assigns the next value of the per-table insertion counter. Seq
// gives collections a stable display order independent of timestamps.
func nextSeq(tx *gorm.DB, model any) (int64, error) {
	var max int64
	if err := tx.Model(model).Select("COALESCE(MAX(seq), 0)").Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}
