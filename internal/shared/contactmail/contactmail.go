// Package contactmail composes the email that a portfolio contact submission
// turns into, for both the mailto: handoff in the browser and the server's
// SMTP delivery.
package contactmail

import (
	"net/url"
	"strings"
)

const (
	// DefaultRecipient is used when the page exposes no mailto: link and no
	// recipient is configured.
	DefaultRecipient = "your.email@example.com"

	// Footer closes every composed body.
	Footer = "Sent from portfolio contact form"
)

// Subject returns the subject line for a message from name.
func Subject(name string) string {
	return "Portfolio Contact from " + name
}

// Body returns the plain-text body listing the three submitted fields.
func Body(name, email, message string) string {
	var sb strings.Builder
	sb.WriteString("Name: ")
	sb.WriteString(name)
	sb.WriteString("\nEmail: ")
	sb.WriteString(email)
	sb.WriteString("\n\nMessage:\n")
	sb.WriteString(message)
	sb.WriteString("\n\n---\n")
	sb.WriteString(Footer)
	return sb.String()
}

// Recipient extracts the address from a mailto: href, dropping any query.
// The address is returned as written in the href, percent-escapes included,
// so it can be placed back into a mailto: URL unchanged.
// It returns false when href is not a mailto: link or carries no address.
func Recipient(href string) (string, bool) {
	const scheme = "mailto:"
	if len(href) < len(scheme) || !strings.EqualFold(href[:len(scheme)], scheme) {
		return "", false
	}

	addr, _, _ := strings.Cut(href[len(scheme):], "?")
	addr = strings.TrimSpace(addr)

	return addr, addr != ""
}

// Escape percent-encodes s for a mailto: query value, with spaces as %20.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MailtoURL builds mailto:<recipient>?subject=..&body=.. for a submission.
func MailtoURL(recipient, name, email, message string) string {
	return "mailto:" + recipient +
		"?subject=" + Escape(Subject(name)) +
		"&body=" + Escape(Body(name, email, message))
}
