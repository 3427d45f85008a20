package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "areuok", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	var names []string
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "signin")
	assert.Contains(t, names, "signout")
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "quote")
	assert.Contains(t, names, "device")
	assert.Contains(t, names, "watch")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "remote")
}

func TestWatchCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range watchCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "request")
	assert.Contains(t, names, "cancel")
	assert.Contains(t, names, "pending")
	assert.Contains(t, names, "accept")
	assert.Contains(t, names, "reject")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "remove")
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "review")
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"config error", errors.New("load config: bad base dir"), "config_error"},
		{"database error", errors.New("initialize database: locked"), "database_error"},
		{"network error", errors.New("remote API: connection refused"), "network_error"},
		{"permission error", errors.New("only supervisor devices can send requests"), "permission_error"},
		{"not found", errors.New("request abc not found"), "not_found_error"},
		{"validation error", errors.New("invalid device mode"), "validation_error"},
		{"unknown", errors.New("something odd"), "unknown_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyError(tt.err))
		})
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("Connection Refused", "connection"))
	assert.True(t, containsAny("abc", "x", "b"))
	assert.False(t, containsAny("abc", "x", "y"))
}
