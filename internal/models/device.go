package models

import (
	"fmt"
	"time"
)

// DeviceMode governs which operations a device may perform.
type DeviceMode string

const (
	// ModeSignin marks a device that only records its own check-ins.
	ModeSignin DeviceMode = "signin"
	// ModeSupervisor marks a device that supervises others.
	ModeSupervisor DeviceMode = "supervisor"
)

// Valid reports whether the mode is one of the known values.
func (m DeviceMode) Valid() bool {
	return m == ModeSignin || m == ModeSupervisor
}

// DeviceInfo identifies the local device.
//
// DeviceID is generated once at first use and immutable thereafter.
type DeviceInfo struct {
	DeviceID   string     `json:"device_id"`
	DeviceName string     `json:"device_name"`
	IMEI       string     `json:"imei,omitempty"`
	Mode       DeviceMode `json:"mode"`
	CreatedAt  time.Time  `json:"created_at"`
}

// EffectiveIMEI returns the IMEI when set, falling back to the device id.
func (d *DeviceInfo) EffectiveIMEI() string {
	if d.IMEI != "" {
		return d.IMEI
	}
	return d.DeviceID
}

// DeviceConfig is the per-device configuration record. It owns the device
// identity and the two supervision collections, and is persisted as a single
// JSON record.
type DeviceConfig struct {
	Device                   DeviceInfo                `json:"device"`
	SupervisionRequests      []SupervisionRequest      `json:"supervision_requests"`
	SupervisionRelationships []SupervisionRelationship `json:"supervision_relationships"`
}

// NewDeviceConfig creates a fresh configuration for a newly generated device
// id. New devices start in sign-in mode with a derived display name.
func NewDeviceConfig(deviceID string) *DeviceConfig {
	name := deviceID
	if len(name) > 8 {
		name = name[:8]
	}
	return &DeviceConfig{
		Device: DeviceInfo{
			DeviceID:   deviceID,
			DeviceName: fmt.Sprintf("device-%s", name),
			Mode:       ModeSignin,
			CreatedAt:  time.Now().UTC(),
		},
		SupervisionRequests:      []SupervisionRequest{},
		SupervisionRelationships: []SupervisionRelationship{},
	}
}

// FindRequest returns a pointer into the requests slice for the given id,
// or nil if no request matches.
func (c *DeviceConfig) FindRequest(requestID string) *SupervisionRequest {
	for i := range c.SupervisionRequests {
		if c.SupervisionRequests[i].RequestID == requestID {
			return &c.SupervisionRequests[i]
		}
	}
	return nil
}
