package db

import "github.com/areuok/areuok/internal/models"

// LoadEmailConfig retrieves the email configuration, falling back to the
// disabled defaults when none has been saved.
func (db *DB) LoadEmailConfig() (*models.EmailConfig, error) {
	var cfg models.EmailConfig
	found, err := db.loadRecordInto(models.RecordEmail, &cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.DefaultEmailConfig(), nil
	}
	return &cfg, nil
}

// SaveEmailConfig persists the email configuration record.
func (db *DB) SaveEmailConfig(cfg *models.EmailConfig) error {
	return db.SaveRecord(models.RecordEmail, cfg)
}
