package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventConstants(t *testing.T) {
	assert.Equal(t, "app_exited", EventAppExited)
	assert.Equal(t, "cli_command_executed", EventCLICommandExecuted)
	assert.Equal(t, "cli_error_occurred", EventCLIErrorOccurred)
	assert.Equal(t, "checkin_completed", EventCheckinCompleted)
	assert.Equal(t, "signout", EventSignout)
	assert.Equal(t, "supervision_request_sent", EventRequestSent)
	assert.Equal(t, "supervision_request_resolved", EventRequestResolved)
	assert.Equal(t, "supervision_relationship_removed", EventRelationshipRemoved)
	assert.Equal(t, "device_mode_changed", EventDeviceModeChanged)
	assert.Equal(t, "device_renamed", EventDeviceRenamed)
}

func TestBaseProperties(t *testing.T) {
	props := baseProperties()

	assert.Contains(t, props, "os")
	assert.Contains(t, props, "arch")
	assert.Contains(t, props, "version")
	assert.Contains(t, props, "dev_build")
}
