package database

import (
	"database/sql"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/settings"
)

// Database owns the process-wide connection to the catalog file. It is opened
// once at start-up, handed to every shell and closed on shutdown.
type Database struct {
	DB *gorm.DB

	books    *books.Repository
	settings *settings.Repository
}

// Option configures NewDatabase.
type Option func(*gorm.Config)

// WithQueryLogging logs every statement at Info level instead of only
// warnings and slow queries.
func WithQueryLogging(enabled bool) Option {
	return func(cfg *gorm.Config) {
		if enabled {
			cfg.Logger = logger.Default.LogMode(logger.Info)
		}
	}
}

// WithSilentLogger suppresses gorm output entirely (used by tests and
// one-shot CLI commands that print to stdout).
func WithSilentLogger() Option {
	return func(cfg *gorm.Config) {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
}

func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	for _, opt := range opts {
		opt(gormCfg)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{
		DB:       db,
		books:    books.NewRepository(db),
		settings: settings.NewRepository(db),
	}

	if err := database.Initialize(); err != nil {
		_ = database.Close()
		return nil, err
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

// Initialize ensures every table exists. Idempotent.
func (d *Database) Initialize() error {
	if err := d.books.Initialize(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := d.settings.Initialize(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Books returns the catalog store.
func (d *Database) Books() *books.Repository {
	return d.books
}

// Settings returns the key/value settings repository.
func (d *Database) Settings() *settings.Repository {
	return d.settings
}

// SQLDB exposes the underlying *sql.DB, e.g. for the session store.
func (d *Database) SQLDB() (*sql.DB, error) {
	return d.DB.DB()
}

// Ping checks that the database file is still reachable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
