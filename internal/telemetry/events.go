package telemetry

import (
	"runtime"

	"github.com/areuok/areuok/pkg/version"
)

// Event names
const (
	EventAppExited           = "app_exited"
	EventCLICommandExecuted  = "cli_command_executed"
	EventCLIErrorOccurred    = "cli_error_occurred"
	EventCheckinCompleted    = "checkin_completed"
	EventSignout             = "signout"
	EventRequestSent         = "supervision_request_sent"
	EventRequestResolved     = "supervision_request_resolved"
	EventRelationshipRemoved = "supervision_relationship_removed"
	EventDeviceModeChanged   = "device_mode_changed"
	EventDeviceRenamed       = "device_renamed"
)

// Version is set at compile time via ldflags.
var Version string

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"version":    Version,
		"prerelease": version.IsPrerelease(),
		"dev_build":  version.IsDevBuild(),
	}
}

// TrackCLICommandExecuted tracks command execution.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackCLIError tracks a command failure by coarse error type. Never sends
// the error message itself.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(durationMs int64) {
	props := baseProperties()
	props["session_duration_ms"] = durationMs
	c.Track(EventAppExited, props)
}

// TrackCheckinCompleted tracks a completed check-in. Only the streak count
// is sent, never the owner name or history.
func (c *posthogClient) TrackCheckinCompleted(streak int, continued, reset bool) {
	props := baseProperties()
	props["streak"] = streak
	props["continued"] = continued
	props["reset"] = reset
	c.Track(EventCheckinCompleted, props)
}

// TrackSignout tracks deletion of the local check-in record.
func (c *posthogClient) TrackSignout() {
	c.Track(EventSignout, baseProperties())
}

// TrackRequestSent tracks a new supervision request.
func (c *posthogClient) TrackRequestSent() {
	c.Track(EventRequestSent, baseProperties())
}

// TrackRequestResolved tracks an accept/reject/cancel resolution.
func (c *posthogClient) TrackRequestResolved(action string) {
	props := baseProperties()
	props["action"] = action
	c.Track(EventRequestResolved, props)
}

// TrackRelationshipRemoved tracks removal of a supervision relationship.
func (c *posthogClient) TrackRelationshipRemoved() {
	c.Track(EventRelationshipRemoved, baseProperties())
}

// TrackDeviceModeChanged tracks a mode switch.
func (c *posthogClient) TrackDeviceModeChanged(mode string) {
	props := baseProperties()
	props["mode"] = mode
	c.Track(EventDeviceModeChanged, props)
}

// TrackDeviceRenamed tracks a rename (the name itself is never sent).
func (c *posthogClient) TrackDeviceRenamed() {
	c.Track(EventDeviceRenamed, baseProperties())
}

// --- noop implementations ---

func (c *noopClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {}
func (c *noopClient) TrackCLIError(commandName, errorType string)                                 {}
func (c *noopClient) TrackAppExited(durationMs int64)                                             {}
func (c *noopClient) TrackCheckinCompleted(streak int, continued, reset bool)                     {}
func (c *noopClient) TrackSignout()                                                               {}
func (c *noopClient) TrackRequestSent()                                                           {}
func (c *noopClient) TrackRequestResolved(action string)                                          {}
func (c *noopClient) TrackRelationshipRemoved()                                                   {}
func (c *noopClient) TrackDeviceModeChanged(mode string)                                          {}
func (c *noopClient) TrackDeviceRenamed()                                                         {}
