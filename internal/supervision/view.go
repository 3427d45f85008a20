package supervision

import "github.com/areuok/areuok/internal/models"

// SupervisedDevices projects the relationships where the local device is
// the supervisor into per-device statuses for the given date. Each status
// joins the locally present check-in record; a missing record yields zero
// values. The projection is derived, never stored.
func (l *Ledger) SupervisedDevices(today string) ([]models.DeviceStatus, error) {
	cfg, err := l.store.LoadOrCreateDeviceConfig()
	if err != nil {
		return nil, err
	}

	rec, err := l.store.LoadCheckin()
	if err != nil {
		return nil, err
	}

	var statuses []models.DeviceStatus
	for _, rel := range cfg.SupervisionRelationships {
		if rel.SupervisorDeviceID != cfg.Device.DeviceID {
			continue
		}
		statuses = append(statuses, deviceStatus(rel, rec, today))
	}
	return statuses, nil
}

// deviceStatus builds the status row for one relationship.
func deviceStatus(rel models.SupervisionRelationship, rec *models.CheckinRecord, today string) models.DeviceStatus {
	status := models.DeviceStatus{
		DeviceID:        rel.SupervisedDeviceID,
		DeviceName:      rel.SupervisedDeviceName,
		IsSignedInToday: rec.SignedInOn(today),
		LastSyncAt:      rel.LastSyncAt,
	}
	if rec != nil {
		status.LastSigninDate = rec.LastSigninDate
		status.Streak = rec.Streak
	}
	return status
}

// SupervisorStatus bundles the supervised device statuses with the local
// device's outstanding pending requests.
func (l *Ledger) SupervisorStatus(today string) (*models.SupervisorStatus, error) {
	cfg, err := l.store.LoadOrCreateDeviceConfig()
	if err != nil {
		return nil, err
	}

	devices, err := l.SupervisedDevices(today)
	if err != nil {
		return nil, err
	}

	var pending []models.SupervisionRequest
	for _, req := range cfg.SupervisionRequests {
		if req.SupervisorDeviceID == cfg.Device.DeviceID && req.Status == models.RequestPending {
			pending = append(pending, req)
		}
	}

	return &models.SupervisorStatus{
		SupervisorDeviceID: cfg.Device.DeviceID,
		SupervisedDevices:  devices,
		PendingRequests:    pending,
	}, nil
}
