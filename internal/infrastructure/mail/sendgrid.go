package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends transactional email through the SendGrid v3 API.
type SendGridMailer struct {
	client *sendgrid.Client
	from   string
}

// NewSendGridMailer creates a mailer sending from the given address.
func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

// Send dispatches a single message to all recipients. SendGrid treats the
// whole call as one delivery: there is no per-recipient retry.
func (m *SendGridMailer) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return nil
	}

	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail("", m.from))
	message.Subject = subject

	personalization := sgmail.NewPersonalization()
	for _, addr := range to {
		personalization.AddTos(sgmail.NewEmail("", addr))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(sgmail.NewContent("text/html", htmlBody))

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
