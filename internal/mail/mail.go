// Package mail forwards contact form submissions over SMTP.
package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/gafarajao/portfolio/internal/config"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

type Contact struct {
	Name    string
	Email   string
	Message string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends contact messages to the site owner.
type Mailer struct {
	cfg  config.SMTP
	send sendFunc
}

func New(cfg config.SMTP) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

func (m *Mailer) Configured() bool { return m.cfg.Configured() }

// Send mails c to the configured recipient with Reply-To set to the sender.
func (m *Mailer) Send(c Contact) error {
	if !m.cfg.Configured() {
		return ErrNotConfigured
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := m.send(m.cfg.Addr(), auth, m.cfg.User, []string{m.cfg.To}, m.compose(c)); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func (m *Mailer) compose(c Contact) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(c.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, c.Name, c.Email, c.Message)

	return []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(c.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips line breaks so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
