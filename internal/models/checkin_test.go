package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedInOn(t *testing.T) {
	rec := &CheckinRecord{LastSigninDate: "2025-06-01"}
	assert.True(t, rec.SignedInOn("2025-06-01"))
	assert.False(t, rec.SignedInOn("2025-06-02"))

	var nilRec *CheckinRecord
	assert.False(t, nilRec.SignedInOn("2025-06-01"))
}

func TestHasHistoryEntry(t *testing.T) {
	rec := &CheckinRecord{SigninHistory: []string{"2025-06-01", "2025-06-02"}}
	assert.True(t, rec.HasHistoryEntry("2025-06-01"))
	assert.False(t, rec.HasHistoryEntry("2025-05-31"))

	var nilRec *CheckinRecord
	assert.False(t, nilRec.HasHistoryEntry("2025-06-01"))
}

func TestClone(t *testing.T) {
	rec := &CheckinRecord{
		Name:           "alice",
		LastSigninDate: "2025-06-02",
		Streak:         2,
		SigninHistory:  []string{"2025-06-01", "2025-06-02"},
	}

	c := rec.Clone()
	c.SigninHistory[0] = "changed"
	c.Streak = 99

	assert.Equal(t, "2025-06-01", rec.SigninHistory[0])
	assert.Equal(t, 2, rec.Streak)

	var nilRec *CheckinRecord
	assert.Nil(t, nilRec.Clone())
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	assert.False(t, RequestPending.IsTerminal())
	assert.True(t, RequestAccepted.IsTerminal())
	assert.True(t, RequestRejected.IsTerminal())
	assert.True(t, RequestCancelled.IsTerminal())
}

func TestEmailConfig_Deliverable(t *testing.T) {
	var nilCfg *EmailConfig
	assert.False(t, nilCfg.Deliverable())

	cfg := DefaultEmailConfig()
	assert.False(t, cfg.Deliverable(), "disabled by default")

	cfg.Enabled = true
	assert.False(t, cfg.Deliverable(), "no recipient yet")

	cfg.ToEmail = "mom@example.com"
	assert.True(t, cfg.Deliverable())
}
