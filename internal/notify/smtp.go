package notify

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// DefaultSMTPHost and DefaultSMTPPort target Gmail's SSL endpoint, matching
// the credentials the screening system has historically used.
const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 465
)

// SMTPSender sends mail over an authenticated SSL SMTP connection.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
}

// NewSMTPSender returns a sender for the given account, using the default
// host and port when empty.
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	if host == "" {
		host = DefaultSMTPHost
	}
	if port == 0 {
		port = DefaultSMTPPort
	}
	return &SMTPSender{Host: host, Port: port, Username: username, Password: password}
}

// Send delivers one message from the configured account.
func (s *SMTPSender) Send(to, subject, body string) error {
	if s.Username == "" || s.Password == "" {
		return fmt.Errorf("email credentials not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.Username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	d.SSL = true
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
