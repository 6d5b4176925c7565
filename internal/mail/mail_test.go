package mail

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gafarajao/portfolio/internal/config"
)

func testConfig() config.SMTP {
	return config.SMTP{Host: "smtp.example.com", Port: "587", User: "site@example.com", Pass: "pw", To: "owner@example.com"}
}

func TestSend_NotConfigured(t *testing.T) {
	m := New(config.SMTP{Host: "smtp.example.com", Port: "587"})

	assert.False(t, m.Configured())
	assert.ErrorIs(t, m.Send(Contact{Name: "Ada"}), ErrNotConfigured)
}

func TestSend_ComposesMessage(t *testing.T) {
	m := New(testConfig())
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := m.Send(Contact{Name: "Ada\r\nBcc: evil@example.com", Email: "ada@example.com", Message: "Let's talk"})

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	msg := string(gotMsg)
	assert.Contains(t, msg, "Subject: Portfolio Contact: AdaBcc: evil@example.com\r\n")
	assert.Contains(t, msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, msg, "Message:\nLet's talk\n")
	headers, _, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)
	assert.NotContains(t, headers, "\r\nBcc:")
}

func TestSend_WrapsTransportError(t *testing.T) {
	m := New(testConfig())
	boom := errors.New("connection refused")
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }

	err := m.Send(Contact{Name: "Ada"})

	assert.ErrorIs(t, err, boom)
}
