package notify

import (
	"context"
	"errors"

	"github.com/kostsaya/kost-manager/internal/model"
	"github.com/kostsaya/kost-manager/pkg/phone"
	"github.com/kostsaya/kost-manager/pkg/twilio"
)

// whatsAppClient is the provider operation the WhatsApp channel depends on.
type whatsAppClient interface {
	Configured() bool
	SendWhatsApp(ctx context.Context, to, body string) (string, error)
}

// WhatsAppChannel delivers verification messages over WhatsApp.
type WhatsAppChannel struct {
	client whatsAppClient
}

func NewWhatsAppChannel(client whatsAppClient) *WhatsAppChannel {
	return &WhatsAppChannel{client: client}
}

// Send normalizes the target number and invokes the provider. It never
// returns an error: misconfiguration, a missing target and provider
// failures are all converted into the outcome.
func (c *WhatsAppChannel) Send(ctx context.Context, target string, action model.VerificationAction, data TemplateData) Outcome {
	if !c.client.Configured() {
		return NotAttempted(ChannelWhatsApp, "WhatsApp service not configured")
	}

	to := phone.Normalize(target)
	if to == "" {
		return NotAttempted(ChannelWhatsApp, "Invalid phone number")
	}

	sid, err := c.client.SendWhatsApp(ctx, to, WhatsAppText(action, data))
	if err != nil {
		return Failed(ChannelWhatsApp, translateWhatsAppError(err))
	}

	return Outcome{Channel: ChannelWhatsApp, Attempted: true, Success: true, ProviderRef: sid}
}

// translateWhatsAppError maps well-known Twilio error codes to readable
// reasons; anything else falls back to the provider message.
func translateWhatsAppError(err error) string {
	var apiErr *twilio.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 21211:
			return "Invalid phone number"
		case 63016:
			return "Recipient has not joined the WhatsApp sandbox"
		case 21408:
			return "WhatsApp sender not approved"
		}
	}

	return err.Error()
}
