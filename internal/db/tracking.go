package db

import (
	"github.com/google/uuid"

	"github.com/areuok/areuok/internal/models"
)

type trackingRecord struct {
	TrackingID string `json:"tracking_id"`
}

// GetOrCreateTrackingID returns the persistent telemetry tracking ID,
// creating one if it doesn't exist. On any error, it falls back to a
// per-session ID.
func (db *DB) GetOrCreateTrackingID() string {
	var rec trackingRecord
	found, err := db.loadRecordInto(models.RecordTrackingID, &rec)
	if err == nil && found && rec.TrackingID != "" {
		return rec.TrackingID
	}

	rec.TrackingID = uuid.New().String()
	// Even if the save fails, return the generated ID for this session
	_ = db.SaveRecord(models.RecordTrackingID, &rec)
	return rec.TrackingID
}
