package mail

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strconv"
	"strings"
)

var (
	// ErrSMTPHostPortRequired is returned when Host/Port are missing.
	ErrSMTPHostPortRequired = errors.New("smtp host and port are required")
	// ErrSMTPNoRecipients is returned when To/Cc/Bcc are all empty.
	ErrSMTPNoRecipients = errors.New("no recipients provided")
	// ErrSMTPNoSender is returned when both Message.From and the configured default From are empty.
	ErrSMTPNoSender = errors.New("no sender provided")
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP is a Mail implementation backed by net/smtp.
type SMTP struct {
	addr        string
	defaultFrom string
	auth        smtp.Auth
	send        sendFunc
}

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username is the SMTP authentication username.
	Username string
	// Password is the SMTP authentication password.
	Password string
	// From is the default sender when Message.From is empty.
	From string
}

// NewSMTP constructs an SMTP mail sender.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrSMTPHostPortRequired
	}

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTP{
		addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		defaultFrom: cfg.From,
		auth:        auth,
		send:        smtp.SendMail,
	}, nil
}

// Send delivers a message over SMTP.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	recipients := msg.Recipients()
	if len(recipients) == 0 {
		return ErrSMTPNoRecipients
	}

	from := msg.From
	if from == "" {
		from = s.defaultFrom
	}
	if from == "" {
		return ErrSMTPNoSender
	}

	return s.send(s.addr, s.auth, from, recipients, compose(from, msg))
}

// Close implements io.Closer for interface compatibility.
func (s *SMTP) Close() error {
	return nil
}

func compose(from string, msg Message) []byte {
	body, contentType := buildBody(msg)

	headers := []string{
		"From: " + headerValue(from),
		"To: " + headerValue(strings.Join(msg.To, ", ")),
	}
	if len(msg.Cc) > 0 {
		headers = append(headers, "Cc: "+headerValue(strings.Join(msg.Cc, ", ")))
	}
	if msg.ReplyTo != "" {
		headers = append(headers, "Reply-To: "+headerValue(msg.ReplyTo))
	}
	headers = append(headers,
		"Subject: "+mime.QEncoding.Encode("utf-8", headerValue(msg.Subject)),
		"MIME-Version: 1.0",
		"Content-Type: "+contentType,
	)

	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + body)
}

// headerValue folds CR and LF into spaces so user input cannot add headers.
func headerValue(v string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(v)
}

func buildBody(msg Message) (body string, contentType string) {
	if msg.HTMLBody != "" && msg.TextBody != "" {
		boundary := multipartBoundary()
		var sb strings.Builder
		sb.WriteString("This is a multipart message in MIME format.\r\n")
		fmt.Fprintf(&sb, "--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.TextBody)
		fmt.Fprintf(&sb, "--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.HTMLBody)
		fmt.Fprintf(&sb, "--%s--", boundary)
		return sb.String(), "multipart/alternative; boundary=" + boundary
	}

	if msg.HTMLBody != "" {
		return msg.HTMLBody, "text/html; charset=UTF-8"
	}

	return msg.TextBody, "text/plain; charset=UTF-8"
}

func multipartBoundary() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "folio-boundary-fallback"
	}
	return "folio-boundary-" + hex.EncodeToString(b[:])
}
