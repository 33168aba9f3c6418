package email

import (
	"gopkg.in/mail.v2"
)

// Client sends transactional email over SMTP.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	fromName string
}

func NewClient(smtpHost string, smtpPort int, username, password, from, fromName string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// Configured reports whether the SMTP host and sender address are set.
func (c *Client) Configured() bool {
	return c.smtpHost != "" && c.from != ""
}

// Send delivers a multipart message with both plain-text and HTML bodies.
func (c *Client) Send(to, subject, text, html string) error {
	message := mail.NewMessage()

	message.SetAddressHeader("From", c.from, c.fromName)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", text)
	if html != "" {
		message.AddAlternative("text/html", html)
	}

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(message)
}
