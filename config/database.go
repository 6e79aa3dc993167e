package config

import (
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/swarmtrail/api-go/models"
)

// ErrStoreNotFound is returned when a query hits a store that has never been
// ingested into. Callers surface it as "run the importer first".
var ErrStoreNotFound = errors.New("store not found, run the importer first")

// Store locates the SQLite database file. Handles are opened per use: the
// importer holds one for the whole run, the API opens a fresh one per
// request and never shares state between requests.
type Store struct {
	Path string
}

// Open opens an existing store. It fails with ErrStoreNotFound when the
// database file does not exist, rather than letting SQLite create an empty
// one.
func (s Store) Open() (*gorm.DB, error) {
	if _, err := os.Stat(s.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return s.open()
}

// Create opens the store, creating the database file if needed, and ensures
// every table exists.
func (s Store) Create() (*gorm.DB, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		Close(db)
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return db, nil
}

func (s Store) open() (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(s.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// Migrate creates any missing tables. It only ever adds, so running it
// against a populated store is safe.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Venue{},
		&models.Checkin{},
		&models.Photo{},
		&models.User{},
		&models.Friend{},
		&models.Visit{},
		&models.UnconfirmedVisit{},
		&models.Tip{},
		&models.Comment{},
		&models.VenueRating{},
		&models.Expertise{},
		&models.Plan{},
		&models.Share{},
	)
}

// Close releases the connection pool behind a gorm handle.
func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
