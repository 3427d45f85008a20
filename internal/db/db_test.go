package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/areuok/areuok/internal/models"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) *DB {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := New(Config{
		Path:        dbPath,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	})
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "areuok.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	// Verify database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	// Verify path is stored correctly
	if db.Path() != dbPath {
		t.Errorf("Path() = %v, want %v", db.Path(), dbPath)
	}
}

func TestRecords_AbsenceIsNotAnError(t *testing.T) {
	db := testDB(t)

	raw, err := db.LoadRecord("missing")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestRecords_SaveOverwritesWholeValue(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.SaveRecord("k", map[string]int{"a": 1, "b": 2}))
	require.NoError(t, db.SaveRecord("k", map[string]int{"a": 3}))

	raw, err := db.LoadRecord("k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3}`, string(raw))
}

func TestRecords_Delete(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.SaveRecord("k", "v"))
	require.NoError(t, db.DeleteRecord("k"))

	raw, err := db.LoadRecord("k")
	require.NoError(t, err)
	assert.Nil(t, raw)

	// Deleting a missing key is a no-op
	require.NoError(t, db.DeleteRecord("k"))
}

func TestCheckinRoundTrip(t *testing.T) {
	db := testDB(t)

	rec, err := db.LoadCheckin()
	require.NoError(t, err)
	assert.Nil(t, rec)

	saved := &models.CheckinRecord{
		Name:           "alice",
		LastSigninDate: "2024-01-02",
		Streak:         2,
		SigninHistory:  []string{"2024-01-01", "2024-01-02"},
	}
	require.NoError(t, db.SaveCheckin(saved))

	rec, err = db.LoadCheckin()
	require.NoError(t, err)
	assert.Equal(t, saved, rec)

	require.NoError(t, db.DeleteCheckin())
	rec, err = db.LoadCheckin()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLoadOrCreateDeviceConfig_GeneratesOnce(t *testing.T) {
	db := testDB(t)

	first, err := db.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.NotEmpty(t, first.Device.DeviceID)

	second, err := db.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Equal(t, first.Device.DeviceID, second.Device.DeviceID)
}

func TestEmailConfig_DefaultsWhenAbsent(t *testing.T) {
	db := testDB(t)

	cfg, err := db.LoadEmailConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPServer)
	assert.Equal(t, 587, cfg.SMTPPort)

	cfg.Enabled = true
	cfg.ToEmail = "alice@example.com"
	require.NoError(t, db.SaveEmailConfig(cfg))

	loaded, err := db.LoadEmailConfig()
	require.NoError(t, err)
	assert.True(t, loaded.Enabled)
	assert.Equal(t, "alice@example.com", loaded.ToEmail)
}

func TestGetOrCreateTrackingID_Persistent(t *testing.T) {
	db := testDB(t)

	id := db.GetOrCreateTrackingID()
	assert.NotEmpty(t, id)
	assert.Equal(t, id, db.GetOrCreateTrackingID())
}
