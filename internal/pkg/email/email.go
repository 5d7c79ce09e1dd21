package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendRecruiterApprovedEmail(toEmail, toName, companyName string) error
	SendRecruiterRejectedEmail(toEmail, toName, companyName string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	BaseURL   string
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendRecruiterApprovedEmail notifies a recruiter that their account was approved.
func (s *EmailServiceImpl) SendRecruiterApprovedEmail(toEmail, toName, companyName string) error {
	// Without SMTP credentials just log the notification (development mode)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("companyName", companyName).
			Msg("SMTP credentials not configured - approval email not sent")
		return nil
	}

	subject := "Your recruiter account has been approved - ZedHire"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">You're approved!</h2>
				<p>Hello %s,</p>
				<p>Your recruiter account for <strong>%s</strong> has been approved. Your published job postings are now visible to candidates.</p>
				<p><a href="%s/dashboard/recruiter">Go to your dashboard</a></p>
				<p>Best regards,<br>The ZedHire Team</p>
			</div>
		</body>
		</html>
	`, toName, companyName, s.config.BaseURL)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendRecruiterRejectedEmail notifies a recruiter that their account was rejected.
func (s *EmailServiceImpl) SendRecruiterRejectedEmail(toEmail, toName, companyName string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("companyName", companyName).
			Msg("SMTP credentials not configured - rejection email not sent")
		return nil
	}

	subject := "Update on your recruiter application - ZedHire"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<p>Hello %s,</p>
				<p>We are unable to approve your recruiter account for <strong>%s</strong> at this time. If you believe this is a mistake, please contact support.</p>
				<p>Best regards,<br>The ZedHire Team</p>
			</div>
		</body>
		</html>
	`, toName, companyName)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email over plain SMTP auth.
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
