package models

import "time"

// RequestStatus is the lifecycle state of a supervision request.
// Pending is the only non-terminal state.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether the status is absorbing.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestAccepted || s == RequestRejected || s == RequestCancelled
}

// SupervisionRequest is a proposal from a supervisor device to monitor a
// target device. The supervisor name is a snapshot taken at creation time,
// not a live reference.
type SupervisionRequest struct {
	RequestID            string        `json:"request_id"`
	SupervisorDeviceID   string        `json:"supervisor_device_id"`
	SupervisorDeviceName string        `json:"supervisor_device_name"`
	TargetDeviceID       string        `json:"target_device_id"`
	Status               RequestStatus `json:"status"`
	CreatedAt            time.Time     `json:"created_at"`
}

// SupervisionRelationship is the standing link created by accepting a
// request. All four name/id fields are snapshots taken at acceptance time.
type SupervisionRelationship struct {
	RelationshipID       string    `json:"relationship_id"`
	SupervisorDeviceID   string    `json:"supervisor_device_id"`
	SupervisorDeviceName string    `json:"supervisor_device_name"`
	SupervisedDeviceID   string    `json:"supervised_device_id"`
	SupervisedDeviceName string    `json:"supervised_device_name"`
	EstablishedAt        time.Time `json:"established_at"`
	LastSyncAt           time.Time `json:"last_sync_at"`
}

// DeviceStatus is the per-relationship view a supervisor sees for a
// supervised device.
type DeviceStatus struct {
	DeviceID         string    `json:"device_id"`
	DeviceName       string    `json:"device_name"`
	LastSigninDate   string    `json:"last_signin_date"`
	Streak           int       `json:"streak"`
	IsSignedInToday  bool      `json:"is_signed_in_today"`
	LastSyncAt       time.Time `json:"last_sync_at"`
}

// SupervisorStatus bundles everything a supervisor device needs to render
// its dashboard.
type SupervisorStatus struct {
	SupervisorDeviceID string               `json:"supervisor_device_id"`
	SupervisedDevices  []DeviceStatus       `json:"supervised_devices"`
	PendingRequests    []SupervisionRequest `json:"pending_requests"`
}
