// Package notify delivers payment verification notifications to tenants
// over independent channels (WhatsApp, email) and reports per-channel
// outcomes without ever failing the surrounding request.
package notify

// Channel names used as keys in dispatch reports and API responses.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)

// Outcome is the result of one channel's delivery attempt. It lives only
// for the duration of a request and is serialized into the API response.
type Outcome struct {
	Channel     string `json:"channel"`
	Attempted   bool   `json:"attempted"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	ProviderRef string `json:"provider_ref,omitempty"`
}

// NotAttempted builds the outcome for a channel that was never invoked,
// either because no target was available or a precondition failed.
func NotAttempted(channel, reason string) Outcome {
	return Outcome{Channel: channel, Attempted: false, Success: false, Error: reason}
}

// Failed builds the outcome for an invoked channel whose send did not
// complete successfully.
func Failed(channel, reason string) Outcome {
	return Outcome{Channel: channel, Attempted: true, Success: false, Error: reason}
}
