package db

import (
	"github.com/google/uuid"

	"github.com/areuok/areuok/internal/models"
)

// LoadOrCreateDeviceConfig retrieves the device configuration, creating and
// persisting a fresh one with a generated device id on first access.
func (db *DB) LoadOrCreateDeviceConfig() (*models.DeviceConfig, error) {
	var cfg models.DeviceConfig
	found, err := db.loadRecordInto(models.RecordDevice, &cfg)
	if err != nil {
		return nil, err
	}
	if found {
		return &cfg, nil
	}

	created := models.NewDeviceConfig(uuid.New().String())
	if err := db.SaveDeviceConfig(created); err != nil {
		return nil, err
	}
	return created, nil
}

// SaveDeviceConfig persists the device configuration record.
func (db *DB) SaveDeviceConfig(cfg *models.DeviceConfig) error {
	return db.SaveRecord(models.RecordDevice, cfg)
}
