// Package email sends the optional check-in summary mail.
//
// Sending is strictly best-effort: the check-in itself has already been
// persisted by the time this runs, and callers log failures instead of
// propagating them.
package email

import (
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/areuok/areuok/internal/models"
)

// Subject builds the mail subject line.
func Subject(name string, streak int) string {
	return fmt.Sprintf("%s checked in: %d day streak", name, streak)
}

// Body builds the plain-text mail body.
func Body(name string, streak int, q *models.Quote) string {
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"Today's check-in is recorded.\n\n"+
			"Current streak: %d day(s)\n\n"+
			"Quote of the day:\n"+
			"%q\n"+
			"- %s\n\n"+
			"Keep it up!\n\n"+
			"--\n"+
			"areuok",
		name, streak, q.Text, q.Author,
	)
}

// Send delivers one check-in summary if the configuration is enabled and a
// recipient is set. A disabled or incomplete configuration is a no-op, not
// an error.
func Send(name string, streak int, q *models.Quote, cfg *models.EmailConfig) error {
	if !cfg.Deliverable() {
		return nil
	}

	from := cfg.FromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(cfg.ToEmail); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(Subject(name, streak))
	msg.SetBodyString(mail.TypeTextPlain, Body(name, streak, q))

	client, err := mail.NewClient(cfg.SMTPServer,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("create SMTP client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
