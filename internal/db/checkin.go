package db

import "github.com/areuok/areuok/internal/models"

// LoadCheckin retrieves the persisted check-in record, or nil if the user
// has never checked in.
func (db *DB) LoadCheckin() (*models.CheckinRecord, error) {
	var rec models.CheckinRecord
	found, err := db.loadRecordInto(models.RecordCheckin, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &rec, nil
}

// SaveCheckin persists the check-in record.
func (db *DB) SaveCheckin(rec *models.CheckinRecord) error {
	return db.SaveRecord(models.RecordCheckin, rec)
}

// DeleteCheckin removes the check-in record (sign-out).
func (db *DB) DeleteCheckin() error {
	return db.DeleteRecord(models.RecordCheckin)
}
