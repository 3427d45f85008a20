// Package device manages the local device identity: a stable generated id
// plus a mutable display name and operating mode.
package device

import (
	"fmt"

	"github.com/areuok/areuok/internal/models"
)

// Store is the persistence boundary for the device configuration record.
type Store interface {
	LoadOrCreateDeviceConfig() (*models.DeviceConfig, error)
	SaveDeviceConfig(cfg *models.DeviceConfig) error
}

// Get returns the device configuration, bootstrapping a new identity on
// first access.
func Get(store Store) (*models.DeviceConfig, error) {
	return store.LoadOrCreateDeviceConfig()
}

// SetMode switches the device between sign-in and supervisor mode.
func SetMode(store Store, mode models.DeviceMode) (*models.DeviceConfig, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown device mode %q", mode)
	}

	cfg, err := store.LoadOrCreateDeviceConfig()
	if err != nil {
		return nil, err
	}
	cfg.Device.Mode = mode
	if err := store.SaveDeviceConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Rename updates the device display name.
func Rename(store Store, name string) (*models.DeviceConfig, error) {
	if name == "" {
		return nil, fmt.Errorf("device name must not be empty")
	}

	cfg, err := store.LoadOrCreateDeviceConfig()
	if err != nil {
		return nil, err
	}
	cfg.Device.DeviceName = name
	if err := store.SaveDeviceConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetIMEI records a hardware identifier for the device.
func SetIMEI(store Store, imei string) (*models.DeviceConfig, error) {
	cfg, err := store.LoadOrCreateDeviceConfig()
	if err != nil {
		return nil, err
	}
	cfg.Device.IMEI = imei
	if err := store.SaveDeviceConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
