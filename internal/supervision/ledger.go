// Package supervision implements the device supervision lifecycle: the
// request state machine that turns two devices into a supervisor-supervised
// pair, and the read-only views a supervisor uses to observe its devices.
package supervision

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/areuok/areuok/internal/models"
)

// Store is the persistence boundary the ledger operates against. The whole
// device configuration record is loaded and rewritten on every mutation.
type Store interface {
	LoadOrCreateDeviceConfig() (*models.DeviceConfig, error)
	SaveDeviceConfig(cfg *models.DeviceConfig) error
	LoadCheckin() (*models.CheckinRecord, error)
}

// Ledger owns the supervision request and relationship collections for the
// local device. Every operation is a full read-modify-write cycle; the
// mutex serializes cycles within this process. There is no cross-process
// lock.
type Ledger struct {
	store Store
	mu    sync.Mutex

	// now is swappable for tests.
	now func() time.Time
}

// NewLedger creates a ledger over the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateRequest issues a new supervision request from the local device to
// the target. The local device must be in supervisor mode. Multiple pending
// requests to the same target are allowed.
func (l *Ledger) CreateRequest(targetDeviceID string) (*models.SupervisionRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg, err := l.store.LoadOrCreateDeviceConfig()
	if err != nil {
		return nil, err
	}

	if cfg.Device.Mode != models.ModeSupervisor {
		return nil, ErrNotAuthorized
	}

	req := models.SupervisionRequest{
		RequestID:            uuid.New().String(),
		SupervisorDeviceID:   cfg.Device.DeviceID,
		SupervisorDeviceName: cfg.Device.DeviceName,
		TargetDeviceID:       targetDeviceID,
		Status:               models.RequestPending,
		CreatedAt:            l.now(),
	}

	cfg.SupervisionRequests = append(cfg.SupervisionRequests, req)
	if err := l.store.SaveDeviceConfig(cfg); err != nil {
		return nil, fmt.Errorf("save request: %w", err)
	}

	return &req, nil
}

// CancelRequest marks a request as cancelled. It is callable by the
// requester regardless of the request's current status.
func (l *Ledger) CancelRequest(requestID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg, err := l.store.LoadOrCreateDeviceConfig()
	if err != nil {
		return err
	}

	req := cfg.FindRequest(requestID)
	if req == nil {
		return ErrNotFound
	}

	req.Status = models.RequestCancelled
	return l.store.SaveDeviceConfig(cfg)
}

// PendingFor returns all pending requests addressed to the given device.
// Read-only, no side effects.
func (l *Ledger) PendingFor(deviceID string) ([]models.SupervisionRequest, error) {
	cfg, err := l.store.LoadOrCreateDeviceConfig()
	if err != nil {
		return nil, err
	}

	var pending []models.SupervisionRequest
	for _, req := range cfg.SupervisionRequests {
		if req.TargetDeviceID == deviceID && req.Status == models.RequestPending {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

// AcceptRequest accepts a pending request addressed to the local device and
// derives the supervision relationship. The status flip and the new
// relationship are committed in a single write: an accepted request never
// exists without its relationship.
func (l *Ledger) AcceptRequest(requestID string) (*models.SupervisionRelationship, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg, err := l.store.LoadOrCreateDeviceConfig()
	if err != nil {
		return nil, err
	}

	req := cfg.FindRequest(requestID)
	if req == nil || req.Status != models.RequestPending {
		return nil, ErrNotFound
	}
	if req.TargetDeviceID != cfg.Device.DeviceID {
		return nil, ErrWrongTarget
	}

	now := l.now()
	rel := models.SupervisionRelationship{
		RelationshipID:       uuid.New().String(),
		SupervisorDeviceID:   req.SupervisorDeviceID,
		SupervisorDeviceName: req.SupervisorDeviceName,
		SupervisedDeviceID:   cfg.Device.DeviceID,
		SupervisedDeviceName: cfg.Device.DeviceName,
		EstablishedAt:        now,
		LastSyncAt:           now,
	}

	cfg.SupervisionRelationships = append(cfg.SupervisionRelationships, rel)
	req.Status = models.RequestAccepted

	if err := l.store.SaveDeviceConfig(cfg); err != nil {
		return nil, fmt.Errorf("save acceptance: %w", err)
	}

	return &rel, nil
}

// RejectRequest rejects a request addressed to the local device. No
// relationship is created.
func (l *Ledger) RejectRequest(requestID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg, err := l.store.LoadOrCreateDeviceConfig()
	if err != nil {
		return err
	}

	req := cfg.FindRequest(requestID)
	if req == nil || req.Status != models.RequestPending {
		return ErrNotFound
	}
	if req.TargetDeviceID != cfg.Device.DeviceID {
		return ErrWrongTarget
	}

	req.Status = models.RequestRejected
	return l.store.SaveDeviceConfig(cfg)
}

// RemoveRelationship deletes a relationship by id. Removal is immediate and
// permanent; there is no tombstone.
func (l *Ledger) RemoveRelationship(relationshipID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg, err := l.store.LoadOrCreateDeviceConfig()
	if err != nil {
		return err
	}

	kept := cfg.SupervisionRelationships[:0]
	for _, rel := range cfg.SupervisionRelationships {
		if rel.RelationshipID != relationshipID {
			kept = append(kept, rel)
		}
	}

	if len(kept) == len(cfg.SupervisionRelationships) {
		return ErrNotFound
	}

	cfg.SupervisionRelationships = kept
	return l.store.SaveDeviceConfig(cfg)
}
