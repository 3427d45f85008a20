package supervision

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/areuok/areuok/internal/db"
	"github.com/areuok/areuok/internal/models"
)

// testLedger creates a ledger over a temporary database.
func testLedger(t *testing.T) (*db.DB, *Ledger) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.New(db.DefaultConfig(dbPath))
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return database, NewLedger(database)
}

// seedConfig persists a crafted device configuration.
func seedConfig(t *testing.T, database *db.DB, cfg *models.DeviceConfig) {
	t.Helper()
	require.NoError(t, database.SaveDeviceConfig(cfg))
}

// supervisorConfig returns a config for a device in supervisor mode.
func supervisorConfig(id, name string) *models.DeviceConfig {
	cfg := models.NewDeviceConfig(id)
	cfg.Device.DeviceName = name
	cfg.Device.Mode = models.ModeSupervisor
	return cfg
}

// incomingRequest appends a pending request from a remote supervisor to the
// config's request collection, simulating a synced inbound request.
func incomingRequest(cfg *models.DeviceConfig, requestID, supervisorID, supervisorName, targetID string) {
	cfg.SupervisionRequests = append(cfg.SupervisionRequests, models.SupervisionRequest{
		RequestID:            requestID,
		SupervisorDeviceID:   supervisorID,
		SupervisorDeviceName: supervisorName,
		TargetDeviceID:       targetID,
		Status:               models.RequestPending,
		CreatedAt:            time.Now().UTC(),
	})
}

func TestCreateRequest_RequiresSupervisorMode(t *testing.T) {
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-b")
	seedConfig(t, database, cfg)

	_, err := ledger.CreateRequest("device-x")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// Nothing was persisted
	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Empty(t, saved.SupervisionRequests)
}

func TestCreateRequest_SnapshotsSupervisorName(t *testing.T) {
	database, ledger := testLedger(t)
	seedConfig(t, database, supervisorConfig("device-a", "Alice's laptop"))

	req, err := ledger.CreateRequest("device-b")
	require.NoError(t, err)

	assert.NotEmpty(t, req.RequestID)
	assert.Equal(t, "device-a", req.SupervisorDeviceID)
	assert.Equal(t, "Alice's laptop", req.SupervisorDeviceName)
	assert.Equal(t, "device-b", req.TargetDeviceID)
	assert.Equal(t, models.RequestPending, req.Status)

	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	require.Len(t, saved.SupervisionRequests, 1)
	assert.Equal(t, req.RequestID, saved.SupervisionRequests[0].RequestID)
}

func TestCreateRequest_DuplicatePendingAllowed(t *testing.T) {
	database, ledger := testLedger(t)
	seedConfig(t, database, supervisorConfig("device-a", "a"))

	first, err := ledger.CreateRequest("device-b")
	require.NoError(t, err)
	second, err := ledger.CreateRequest("device-b")
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)

	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Len(t, saved.SupervisionRequests, 2)
}

func TestAcceptRequest_CreatesRelationship(t *testing.T) {
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-b")
	cfg.Device.DeviceName = "Bob's phone"
	incomingRequest(cfg, "req-1", "device-a", "Alice's laptop", "device-b")
	seedConfig(t, database, cfg)

	rel, err := ledger.AcceptRequest("req-1")
	require.NoError(t, err)

	assert.Equal(t, "device-a", rel.SupervisorDeviceID)
	assert.Equal(t, "Alice's laptop", rel.SupervisorDeviceName)
	assert.Equal(t, "device-b", rel.SupervisedDeviceID)
	assert.Equal(t, "Bob's phone", rel.SupervisedDeviceName)
	assert.False(t, rel.LastSyncAt.Before(rel.EstablishedAt))

	// Request flip and relationship are committed together
	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	require.Len(t, saved.SupervisionRelationships, 1)
	assert.Equal(t, rel.RelationshipID, saved.SupervisionRelationships[0].RelationshipID)
	assert.Equal(t, models.RequestAccepted, saved.SupervisionRequests[0].Status)
}

func TestAcceptRequest_WrongTarget(t *testing.T) {
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-c")
	incomingRequest(cfg, "req-1", "device-a", "a", "device-b")
	seedConfig(t, database, cfg)

	_, err := ledger.AcceptRequest("req-1")
	assert.ErrorIs(t, err, ErrWrongTarget)

	// No relationship was created
	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Empty(t, saved.SupervisionRelationships)
	assert.Equal(t, models.RequestPending, saved.SupervisionRequests[0].Status)
}

func TestAcceptRequest_UnknownID(t *testing.T) {
	database, ledger := testLedger(t)
	seedConfig(t, database, models.NewDeviceConfig("device-b"))

	_, err := ledger.AcceptRequest("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptRequest_TerminalStatusFails(t *testing.T) {
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-b")
	incomingRequest(cfg, "req-1", "device-a", "a", "device-b")
	seedConfig(t, database, cfg)

	_, err := ledger.AcceptRequest("req-1")
	require.NoError(t, err)

	// Accepting again fails and creates nothing new
	_, err = ledger.AcceptRequest("req-1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = ledger.RejectRequest("req-1")
	assert.ErrorIs(t, err, ErrNotFound)

	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Len(t, saved.SupervisionRelationships, 1)
}

func TestRejectRequest(t *testing.T) {
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-b")
	incomingRequest(cfg, "req-1", "device-a", "a", "device-b")
	seedConfig(t, database, cfg)

	require.NoError(t, ledger.RejectRequest("req-1"))

	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, saved.SupervisionRequests[0].Status)
	assert.Empty(t, saved.SupervisionRelationships)

	// Terminal now: a second reject fails
	assert.ErrorIs(t, ledger.RejectRequest("req-1"), ErrNotFound)
}

func TestRejectRequest_WrongTarget(t *testing.T) {
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-c")
	incomingRequest(cfg, "req-1", "device-a", "a", "device-b")
	seedConfig(t, database, cfg)

	assert.ErrorIs(t, ledger.RejectRequest("req-1"), ErrWrongTarget)
}

func TestCancelRequest(t *testing.T) {
	database, ledger := testLedger(t)
	seedConfig(t, database, supervisorConfig("device-a", "a"))

	req, err := ledger.CreateRequest("device-b")
	require.NoError(t, err)

	require.NoError(t, ledger.CancelRequest(req.RequestID))

	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Equal(t, models.RequestCancelled, saved.SupervisionRequests[0].Status)
}

func TestCancelRequest_NotFound(t *testing.T) {
	database, ledger := testLedger(t)
	seedConfig(t, database, supervisorConfig("device-a", "a"))

	assert.ErrorIs(t, ledger.CancelRequest("nope"), ErrNotFound)
}

func TestCancelRequest_OverwritesResolvedStatus(t *testing.T) {
	// Cancelling does not check the current status before overwriting it.
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-b")
	incomingRequest(cfg, "req-1", "device-a", "a", "device-b")
	cfg.SupervisionRequests[0].Status = models.RequestRejected
	seedConfig(t, database, cfg)

	require.NoError(t, ledger.CancelRequest("req-1"))

	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Equal(t, models.RequestCancelled, saved.SupervisionRequests[0].Status)
}

func TestPendingFor(t *testing.T) {
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-b")
	incomingRequest(cfg, "req-1", "device-a", "a", "device-b")
	incomingRequest(cfg, "req-2", "device-a", "a", "device-other")
	incomingRequest(cfg, "req-3", "device-c", "c", "device-b")
	cfg.SupervisionRequests[2].Status = models.RequestCancelled
	seedConfig(t, database, cfg)

	pending, err := ledger.PendingFor("device-b")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "req-1", pending[0].RequestID)
}

func TestRemoveRelationship(t *testing.T) {
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-b")
	incomingRequest(cfg, "req-1", "device-a", "a", "device-b")
	seedConfig(t, database, cfg)

	rel, err := ledger.AcceptRequest("req-1")
	require.NoError(t, err)

	require.NoError(t, ledger.RemoveRelationship(rel.RelationshipID))

	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Empty(t, saved.SupervisionRelationships)

	// Removing again always fails
	assert.ErrorIs(t, ledger.RemoveRelationship(rel.RelationshipID), ErrNotFound)
}

func TestRemoveRelationship_ShrinksByExactlyOne(t *testing.T) {
	database, ledger := testLedger(t)
	cfg := models.NewDeviceConfig("device-b")
	incomingRequest(cfg, "req-1", "device-a", "a", "device-b")
	incomingRequest(cfg, "req-2", "device-c", "c", "device-b")
	seedConfig(t, database, cfg)

	rel1, err := ledger.AcceptRequest("req-1")
	require.NoError(t, err)
	_, err = ledger.AcceptRequest("req-2")
	require.NoError(t, err)

	require.NoError(t, ledger.RemoveRelationship(rel1.RelationshipID))

	saved, err := database.LoadOrCreateDeviceConfig()
	require.NoError(t, err)
	assert.Len(t, saved.SupervisionRelationships, 1)
}
