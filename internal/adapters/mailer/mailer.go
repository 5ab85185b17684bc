// Package mailer sends notification email over SMTP.
package mailer

import (
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"

	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
)

type smtpMailer struct {
	dialer *mail.Dialer
	from   string
}

// NewSMTPMailer creates a Mailer that delivers via the given SMTP server.
func NewSMTPMailer(host string, port int, username, password, from string) portssvc.Mailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.StartTLSPolicy = mail.MandatoryStartTLS
	dialer.TLSConfig = &tls.Config{ServerName: host}
	return &smtpMailer{dialer: dialer, from: from}
}

var _ portssvc.Mailer = (*smtpMailer)(nil)

func (m *smtpMailer) Send(to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return nil
	}
	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
