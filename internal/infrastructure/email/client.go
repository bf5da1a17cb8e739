// Package email provides the email client for delivering contact-form
// inquiries.
package email

import (
	"fmt"
	"html"

	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock
// implementations in tests.
type Service interface {
	SendContactInquiry(fromName, fromEmail, subject, message string) error
}

// ResendClient is the concrete implementation of the email Service using the
// Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	toEmail   string
}

// NewService creates a new email service client, returning the Service
// interface.
func NewService(apiKey, fromEmail, toEmail string) (Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is required for the contact form")
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}, nil
}

// SendContactInquiry composes and sends a contact-form inquiry to the
// school's inbox.
func (c *ResendClient) SendContactInquiry(fromName, fromEmail, subject, message string) error {
	htmlContent := fmt.Sprintf(
		`<p><strong>Dari:</strong> %s &lt;%s&gt;</p><p>%s</p>`,
		html.EscapeString(fromName),
		html.EscapeString(fromEmail),
		html.EscapeString(message),
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Portal Sekolah <%s>", c.fromEmail),
		To:      []string{c.toEmail},
		ReplyTo: fromEmail,
		Subject: subject,
		Html:    htmlContent,
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send contact inquiry via Resend: %w", err)
	}

	return nil
}
