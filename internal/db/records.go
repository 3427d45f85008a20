package db

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/areuok/areuok/internal/models"
)

// LoadRecord retrieves the raw JSON value for a logical record key.
// A missing key returns (nil, nil): absence is a valid state.
func (db *DB) LoadRecord(key string) ([]byte, error) {
	var rec models.StoredRecord
	err := db.First(&rec, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load record %s: %w", key, err)
	}
	return []byte(rec.Value), nil
}

// SaveRecord serializes v as JSON and rewrites the whole record value.
func (db *DB) SaveRecord(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	rec := models.StoredRecord{Key: key, Value: string(payload)}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save record %s: %w", key, err)
	}
	return nil
}

// DeleteRecord removes a logical record. Deleting a missing key is a no-op.
func (db *DB) DeleteRecord(key string) error {
	if err := db.Delete(&models.StoredRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete record %s: %w", key, err)
	}
	return nil
}

// loadRecordInto decodes the stored JSON for key into out. It reports
// whether the record existed.
func (db *DB) loadRecordInto(key string, out any) (bool, error) {
	raw, err := db.LoadRecord(key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode record %s: %w", key, err)
	}
	return true, nil
}
