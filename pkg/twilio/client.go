// Package twilio provides a minimal client for sending WhatsApp messages
// through the Twilio Messages API.
//
// Only the message-send operation is implemented; delivery callbacks and the
// rest of the API surface are not needed by this service.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const baseURL = "https://api.twilio.com/2010-04-01"

// APIError is a structured error returned by the Twilio REST API.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twilio: %s (code %d)", e.Message, e.Code)
}

// Client represents a Twilio client used to send WhatsApp notifications.
type Client struct {
	accountSID string
	authToken  string
	from       string // WhatsApp-enabled sender number, e.g. "+14155238886"
	client     *http.Client
}

// NewClient creates a new Twilio Client. Empty credentials produce an
// unconfigured client; Configured reports that state so callers can
// short-circuit instead of making doomed requests.
func NewClient(accountSID, authToken, from string) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether credentials and a sender number are present.
func (c *Client) Configured() bool {
	return c.accountSID != "" && c.authToken != "" && c.from != ""
}

// messageResponse is the subset of the Messages API response we care about.
type messageResponse struct {
	SID string `json:"sid"`
}

// SendWhatsApp sends a WhatsApp message to the given number (in +62… form)
// and returns the provider-assigned message SID.
//
// API failures are returned as *APIError when Twilio supplies a structured
// error body, so callers can translate well-known error codes.
func (c *Client) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", baseURL, c.accountSID)

	form := url.Values{}
	form.Set("From", "whatsapp:"+c.from)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var msg messageResponse
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		return msg.SID, nil
	}

	var apiErr APIError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return "", &apiErr
	}

	return "", fmt.Errorf("twilio API error: %s", resp.Status)
}
