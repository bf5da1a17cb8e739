package services

import (
	"errors"
	"strings"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/email"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

// ErrInvalidInquiry flags a contact submission missing required fields.
var ErrInvalidInquiry = errors.New("name, email and message are required")

// ErrContactUnavailable is returned when no email service is configured.
var ErrContactUnavailable = errors.New("contact form is not configured")

// ContactService forwards visitor inquiries to the school mailbox.
type ContactService struct {
	mail   email.Service
	logger *logging.ChanneledLogger
}

func NewContactService(mail email.Service, logger *logging.ChanneledLogger) *ContactService {
	return &ContactService{mail: mail, logger: logger}
}

// Submit validates and sends one inquiry.
func (s *ContactService) Submit(name, fromEmail, subject, message string) error {
	if s.mail == nil {
		return ErrContactUnavailable
	}

	name = strings.TrimSpace(name)
	fromEmail = strings.TrimSpace(fromEmail)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)

	if name == "" || fromEmail == "" || message == "" || !strings.Contains(fromEmail, "@") {
		return ErrInvalidInquiry
	}
	if subject == "" {
		subject = "Pesan dari formulir kontak"
	}

	if err := s.mail.SendContactInquiry(name, fromEmail, subject, message); err != nil {
		s.logger.LogError(logging.ChannelEmail, "contact", err, "")
		return err
	}

	s.logger.Email().Info("Contact inquiry forwarded", "subject", subject)
	return nil
}
