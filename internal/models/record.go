package models

import "time"

// StoredRecord is a persisted JSON record keyed by logical name. The whole
// record value is rewritten on every save; absence of a key is a valid
// state, not an error.
type StoredRecord struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (StoredRecord) TableName() string {
	return "records"
}

// Logical record keys.
const (
	RecordCheckin    = "checkin"
	RecordDevice     = "device_config"
	RecordEmail      = "email_config"
	RecordTrackingID = "telemetry_tracking_id"
)
