package models

// EmailConfig controls the optional check-in summary email.
type EmailConfig struct {
	Enabled      bool   `json:"enabled"`
	ToEmail      string `json:"to_email"`
	SMTPServer   string `json:"smtp_server"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username"`
	SMTPPassword string `json:"smtp_password"`
	FromEmail    string `json:"from_email"`
}

// DefaultEmailConfig returns a disabled configuration with common SMTP
// defaults.
func DefaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:    false,
		SMTPServer: "smtp.gmail.com",
		SMTPPort:   587,
	}
}

// Deliverable reports whether the configuration is complete enough to
// attempt a send.
func (c *EmailConfig) Deliverable() bool {
	return c != nil && c.Enabled && c.ToEmail != ""
}

// Quote is a short inspirational quote attached to check-in notifications.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
