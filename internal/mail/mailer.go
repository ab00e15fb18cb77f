// Package mail sends outbound notification email. Sending is best-effort:
// every failure is logged and reported as false, never as an error, so
// callers continue regardless.
package mail

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Sender delivers a single notification message.
type Sender interface {
	Send(to, subject, textBody, htmlBody string) bool
}

// SMTPSender sends mail through an SMTP relay.
type SMTPSender struct {
	dialer    *gomail.Dialer
	fromName  string
	fromEmail string
}

// Ensure SMTPSender implements Sender
var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates a sender for the given relay and from-address.
func NewSMTPSender(host string, port int, username, password, fromName, fromEmail string) *SMTPSender {
	return &SMTPSender{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send makes a single delivery attempt. No retry, no queue.
func (s *SMTPSender) Send(to, subject, textBody, htmlBody string) bool {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromEmail, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("mail: send to %s failed: %v", to, err)
		return false
	}
	return true
}
