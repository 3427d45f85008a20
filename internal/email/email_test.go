package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/areuok/areuok/internal/models"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "alice checked in: 5 day streak", Subject("alice", 5))
}

func TestBody_ContainsStreakAndQuote(t *testing.T) {
	body := Body("alice", 3, &models.Quote{Text: "Stay hungry.", Author: "Steve Jobs"})

	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "3 day(s)")
	assert.Contains(t, body, "Stay hungry.")
	assert.Contains(t, body, "Steve Jobs")
}

func TestSend_DisabledConfigIsNoop(t *testing.T) {
	cfg := models.DefaultEmailConfig()

	err := Send("alice", 1, testQuote(), cfg)
	assert.NoError(t, err)
}

func TestSend_EnabledWithoutRecipientIsNoop(t *testing.T) {
	cfg := models.DefaultEmailConfig()
	cfg.Enabled = true

	err := Send("alice", 1, testQuote(), cfg)
	assert.NoError(t, err)
}

func TestSend_InvalidFromAddress(t *testing.T) {
	cfg := models.DefaultEmailConfig()
	cfg.Enabled = true
	cfg.ToEmail = "alice@example.com"
	cfg.FromEmail = "not an address"

	err := Send("alice", 1, testQuote(), cfg)
	assert.Error(t, err)
}

func testQuote() *models.Quote {
	return &models.Quote{Text: "q", Author: "a"}
}
