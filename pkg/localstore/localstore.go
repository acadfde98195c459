package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"alpharoot/pkg/apperrors"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Entry is one persisted key/value pair. Values are raw JSON, so the store
// behaves like the browser's localStorage: opaque strings keyed by name.
type Entry struct {
	Key       string         `gorm:"primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// Store is a single-file key/value snapshot store.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the store at path. Use ":memory:" for an
// ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the raw JSON stored under key, or apperrors.ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return []byte(entry.Value), nil
}

// Set writes raw JSON under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	entry := Entry{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	return s.db.Save(&entry).Error
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}

// GetJSON unmarshals the value under key into out.
func (s *Store) GetJSON(key string, out interface{}) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// SetJSON marshals v and stores it under key.
func (s *Store) SetJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}
