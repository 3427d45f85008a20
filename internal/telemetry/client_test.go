package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledByEnvVar(t *testing.T) {
	t.Setenv("AREUOK_TELEMETRY_TRACKING_ENABLED", "false")

	client := New(nil)
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient when disabled")
}

func TestNew_DisabledWithoutAPIKey(t *testing.T) {
	originalKey := PostHogAPIKey
	PostHogAPIKey = ""
	defer func() { PostHogAPIKey = originalKey }()

	client := New(nil)
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient without API key")
}

func TestNoopClient_DoesNotPanic(t *testing.T) {
	client := &noopClient{}

	client.Track("test_event", map[string]interface{}{"key": "value"})
	client.TrackCLICommandExecuted("signin", true, 100)
	client.TrackCLIError("signin", "network_error")
	client.TrackAppExited(5000)
	client.TrackCheckinCompleted(3, true, false)
	client.TrackSignout()
	client.TrackRequestSent()
	client.TrackRequestResolved("accepted")
	client.TrackRelationshipRemoved()
	client.TrackDeviceModeChanged("supervisor")
	client.TrackDeviceRenamed()
	client.Close()

	assert.Empty(t, client.GetTrackingID())
}

type fakeProvider struct{ id string }

func (f *fakeProvider) GetOrCreateTrackingID() string { return f.id }

func TestNew_UsesProviderTrackingID(t *testing.T) {
	originalKey := PostHogAPIKey
	PostHogAPIKey = "test-key"
	defer func() { PostHogAPIKey = originalKey }()

	client := New(&fakeProvider{id: "persistent-id"})
	defer client.Close()

	assert.Equal(t, "persistent-id", client.GetTrackingID())
}
