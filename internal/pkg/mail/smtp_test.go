package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	addr string
	from string
	to   []string
	raw  string
}

func newCapturingSMTP(t *testing.T, cfg SMTPConfig, sendErr error) (*SMTP, *captured) {
	t.Helper()

	s, err := NewSMTP(cfg)
	require.NoError(t, err)

	c := &captured{}
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		c.addr, c.from, c.to, c.raw = addr, from, to, string(msg)
		return sendErr
	}
	return s, c
}

func TestNewSMTP(t *testing.T) {
	_, err := NewSMTP(SMTPConfig{Host: "localhost"})
	assert.ErrorIs(t, err, ErrSMTPHostPortRequired)
}

func TestSMTP_Send(t *testing.T) {
	t.Run("composes headers", func(t *testing.T) {
		// Arrange
		s, c := newCapturingSMTP(t, SMTPConfig{Host: "mail.local", Port: 1025, From: "site@example.com"}, nil)

		// Act
		err := s.Send(context.Background(), Message{
			ReplyTo:  "ada@example.com\r\nBcc: evil@example.com",
			To:       []string{"owner@example.com"},
			Bcc:      []string{"archive@example.com"},
			Subject:  "Portfolio Contact from Zoë",
			TextBody: "hello",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "mail.local:1025", c.addr)
		assert.Equal(t, "site@example.com", c.from)
		assert.Equal(t, []string{"owner@example.com", "archive@example.com"}, c.to)
		assert.Contains(t, c.raw, "Reply-To: ada@example.com Bcc: evil@example.com\r\n")
		assert.Contains(t, c.raw, "Subject: =?utf-8?q?Portfolio_Contact_from_Zo=C3=AB?=\r\n")
		assert.Contains(t, c.raw, "Content-Type: text/plain; charset=UTF-8\r\n\r\nhello")
		assert.NotContains(t, c.raw, "archive@example.com")
	})

	t.Run("multipart when both bodies present", func(t *testing.T) {
		s, c := newCapturingSMTP(t, SMTPConfig{Host: "mail.local", Port: 25, From: "site@example.com"}, nil)

		require.NoError(t, s.Send(context.Background(), Message{To: []string{"a@b.c"}, TextBody: "t", HTMLBody: "<p>h</p>"}))

		assert.Contains(t, c.raw, "multipart/alternative; boundary=folio-boundary-")
		assert.Equal(t, 3, strings.Count(c.raw, "--folio-boundary-"))
	})

	t.Run("no recipients", func(t *testing.T) {
		s, _ := newCapturingSMTP(t, SMTPConfig{Host: "h", Port: 25, From: "x@y.z"}, nil)
		assert.ErrorIs(t, s.Send(context.Background(), Message{}), ErrSMTPNoRecipients)
	})

	t.Run("no sender", func(t *testing.T) {
		s, _ := newCapturingSMTP(t, SMTPConfig{Host: "h", Port: 25}, nil)
		assert.ErrorIs(t, s.Send(context.Background(), Message{To: []string{"a@b.c"}}), ErrSMTPNoSender)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s, _ := newCapturingSMTP(t, SMTPConfig{Host: "h", Port: 25, From: "x@y.z"}, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, s.Send(ctx, Message{To: []string{"a@b.c"}}), context.Canceled)
	})

	t.Run("transport error", func(t *testing.T) {
		boom := errors.New("connection refused")
		s, _ := newCapturingSMTP(t, SMTPConfig{Host: "h", Port: 25, From: "x@y.z"}, boom)
		assert.ErrorIs(t, s.Send(context.Background(), Message{To: []string{"a@b.c"}}), boom)
	})
}
