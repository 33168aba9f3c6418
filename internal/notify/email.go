package notify

import (
	"context"
	"strings"

	"github.com/kostsaya/kost-manager/internal/model"
)

// emailClient is the provider operation the email channel depends on.
type emailClient interface {
	Configured() bool
	Send(to, subject, text, html string) error
}

// EmailChannel delivers verification messages over transactional email.
type EmailChannel struct {
	client emailClient
}

func NewEmailChannel(client emailClient) *EmailChannel {
	return &EmailChannel{client: client}
}

// Send renders the template for the action and hands it to the mail client.
// Same policy as WhatsApp: every failure mode becomes an outcome.
func (c *EmailChannel) Send(_ context.Context, target string, action model.VerificationAction, data TemplateData) Outcome {
	if !c.client.Configured() {
		return NotAttempted(ChannelEmail, "Email service not configured")
	}

	if !strings.Contains(target, "@") {
		return NotAttempted(ChannelEmail, "Invalid email address")
	}

	subject, text, html := EmailTemplate(KindForAction(action), data)

	if err := c.client.Send(target, subject, text, html); err != nil {
		return Failed(ChannelEmail, err.Error())
	}

	return Outcome{Channel: ChannelEmail, Attempted: true, Success: true}
}
