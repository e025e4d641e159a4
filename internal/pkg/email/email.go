package email

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/config"
	"gopkg.in/gomail.v2"
)

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	// SendPayslip mails the rendered payslip PDF to the employee.
	SendPayslip(to, employeeName string, month, year int, pdf []byte) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailServiceImpl{cfg: cfg}
}

// SendPayslip sends the payslip for (month, year) as a PDF attachment.
func (s *emailServiceImpl) SendPayslip(to, employeeName string, month, year int, pdf []byte) error {
	subject := fmt.Sprintf("Salary Slip %d/%d", month, year)

	body := fmt.Sprintf(
		"Dear %s,\n\nPlease find attached your salary slip for %s %d.\n\nRegards,\n%s",
		employeeName, time.Month(month).String(), year, s.cfg.FromName,
	)

	filename := fmt.Sprintf("payslip_%d_%d.pdf", month, year)

	return s.send(to, subject, body, filename, pdf)
}

func (s *emailServiceImpl) send(to, subject, body, attachmentName string, attachment []byte) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.cfg.From, s.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(attachmentName,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := dialer.DialAndSend(msg); err != nil {
			lastErr = err
			slog.Warn("Email send failed", "to", to, "subject", subject, "attempt", attempt, "error", err)
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}
		slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
		return nil
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
