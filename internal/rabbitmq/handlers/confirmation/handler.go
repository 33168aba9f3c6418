package confirmation

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kostsaya/kost-manager/internal/notify"
	"github.com/kostsaya/kost-manager/internal/rabbitmq/queue"
)

type emailClient interface {
	Configured() bool
	Send(to, subject, text, html string) error
}

// Handler sends submission-confirmation emails for consumed queue messages.
type Handler struct {
	client emailClient
}

func NewHandler(client emailClient) *Handler {
	return &Handler{client: client}
}

// HandleMessage sends the confirmation email with the given retry strategy.
// After the attempts are exhausted the message is left to dead-letter.
func (h *Handler) HandleMessage(_ context.Context, msg queue.ConfirmationMessage, strategy retry.Strategy) {
	if !h.client.Configured() {
		zlog.Logger.Warn().Str("payment_id", msg.PaymentID.String()).Msg("email service not configured, skipping confirmation")
		return
	}

	subject, text, html := notify.EmailTemplate(notify.EmailPaymentSubmitted, notify.TemplateData{
		TenantName: msg.TenantName,
		Month:      msg.Month,
		RoomNumber: msg.RoomNumber,
	})

	attempt := 0
	currentDelay := strategy.Delay

	for attempt < strategy.Attempts {
		err := h.client.Send(msg.Email, subject, text, html)
		if err == nil {
			zlog.Logger.Info().Str("payment_id", msg.PaymentID.String()).Msg("confirmation email sent")
			return
		}

		attempt++
		zlog.Logger.Warn().Err(err).Str("payment_id", msg.PaymentID.String()).
			Msgf("failed to send confirmation email, retry %d/%d", attempt, strategy.Attempts)

		time.Sleep(currentDelay)
		currentDelay = time.Duration(float64(currentDelay) * strategy.Backoff)
	}

	zlog.Logger.Error().Str("payment_id", msg.PaymentID.String()).
		Msgf("confirmation email failed after %d attempts, moving to DLQ", attempt)
}
