// Package identity provides the anonymous device fingerprint used to
// deduplicate poll votes. The fingerprint is minted on first use, never
// rotated, and not tied to any account.
package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrStore is returned when the identity database fails; the specifics
// are logged rather than surfaced.
var ErrStore = errors.New("the device identity could not be loaded")

// Provider hands out the durable device fingerprint. Injected into the
// vote path so tests can fake it without touching real storage.
type Provider interface {
	GetOrCreate() (string, error)
}

// DeviceIdentity is the single persisted fingerprint row.
type DeviceIdentity struct {
	ID          uint      `gorm:"primarykey"`
	Fingerprint string    `gorm:"uniqueIndex"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store is the sqlite-backed Provider.
type Store struct {
	db *gorm.DB
}

// Connect opens (creating if necessary) the identity database in
// dataDir and migrates its schema.
func Connect(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(dataDir, "identity.db")), &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to identity database: %w", err)
	}

	if err := db.AutoMigrate(DeviceIdentity{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// GetOrCreate returns the persisted fingerprint, minting one on first
// use. The fingerprint is written exactly once and reused for every
// subsequent vote.
func (s *Store) GetOrCreate() (string, error) {
	var identity DeviceIdentity

	err := s.db.First(&identity).Error
	if err == nil {
		return identity.Fingerprint, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", storeError(err)
	}

	identity = DeviceIdentity{Fingerprint: uuid.NewString()}
	if err := s.db.Create(&identity).Error; err != nil {
		return "", storeError(err)
	}

	return identity.Fingerprint, nil
}

// Ping verifies that the identity database is reachable.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return storeError(err)
	}

	if err := sqlDB.Ping(); err != nil {
		return storeError(err)
	}

	return nil
}

// storeError logs the database error and replaces it with a general
// message, since there is nothing useful the end user can do with
// driver-level detail.
func storeError(err error) error {
	if reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) || err.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrStore
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return fmt.Errorf("%w: %v", ErrStore, err)
}
