package email

import (
	"context"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends through a plain SMTP relay. Used when no Brevo API key is
// configured, typically against a local development mailcatcher.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
	}
	if msg.HTMLBody != "" {
		if msg.TextBody != "" {
			m.AddAlternative("text/html", msg.HTMLBody)
		} else {
			m.SetBody("text/html", msg.HTMLBody)
		}
	}

	return s.dialer.DialAndSend(m)
}
