// Package kvstore is a single-table key-value blob store. It stands in
// for the browser local storage the console historically persisted to:
// whole collections are written as one JSON value per key, and a
// missing or malformed value reads back as absent so callers fall back
// to their seed data.
package kvstore

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Entry is one stored key-value pair.
type Entry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "kv_entries" }

// Store reads and writes entries through a gorm connection.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the raw value for key. ok is false when the key does not
// exist.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	var e Entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kvstore get %q: %w", key, err)
	}
	return e.Value, true, nil
}

// Set writes the raw value for key, inserting or replacing.
func (s *Store) Set(key, value string) error {
	e := Entry{Key: key, Value: value}
	if err := s.db.Save(&e).Error; err != nil {
		return fmt.Errorf("kvstore set %q: %w", key, err)
	}
	return nil
}

// GetJSON unmarshals the value for key into dst. A missing key or a
// value that does not parse both yield ok == false with no error; the
// stored blob is treated as absent rather than surfaced as a failure.
func (s *Store) GetJSON(key string, dst interface{}) (ok bool, err error) {
	raw, found, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON marshals v and stores it under key.
func (s *Store) SetJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kvstore marshal %q: %w", key, err)
	}
	return s.Set(key, string(raw))
}
