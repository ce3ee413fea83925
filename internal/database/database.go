package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/audiobook/internal/config"
	"github.com/mrlokans/audiobook/internal/entities"
)

// Models lists every persisted entity in dependency order.
var Models = []any{
	&entities.Book{},
	&entities.Chapter{},
	&entities.Section{},
	&entities.Shloka{},
	&entities.AudioFile{},
	&entities.Role{},
	&entities.User{},
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a sqlite database file. It is the common entry point
// for tests and the CLI.
func NewDatabase(dbPath string) (*Database, error) {
	return Open(config.Database{Driver: config.DriverSQLite, DSN: dbPath})
}

// Open connects using the configured driver and creates missing tables.
func Open(cfg config.Database) (*Database, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully (%s)", cfg.Driver)

	return &Database{DB: db}, nil
}

func dialectorFor(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return sqlite.Open(sqliteDSN(cfg.DSN)), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off per connection.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") || strings.Contains(path, "_fk=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the underlying connection is usable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
