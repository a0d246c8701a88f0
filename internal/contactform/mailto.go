package contactform

import (
	"context"
	"time"

	"github.com/shandysiswandi/folio/internal/pkg/clock"
	"github.com/shandysiswandi/folio/internal/shared/contactmail"
)

// DefaultMailtoDelay is the pause after opening the compose window.
const DefaultMailtoDelay = time.Second

// LinkFinder locates the page's contact link.
type LinkFinder interface {
	// MailtoHref returns the href of the first mailto: link on the page.
	MailtoHref() (string, bool)
}

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(target string) error
}

// Mailto hands the submission to the visitor's mail client. It cannot observe
// delivery, so it reports success once the compose window was requested.
type Mailto struct {
	links     LinkFinder
	opener    Opener
	clock     clock.Clocker
	delay     time.Duration
	recipient string
}

// MailtoOption configures a Mailto strategy.
type MailtoOption func(*Mailto)

// WithDelay sets the pause after the compose window is opened.
func WithDelay(d time.Duration) MailtoOption {
	return func(m *Mailto) { m.delay = d }
}

// WithFallbackRecipient sets the address used when the page has no mailto: link.
func WithFallbackRecipient(addr string) MailtoOption {
	return func(m *Mailto) {
		if addr != "" {
			m.recipient = addr
		}
	}
}

// NewMailto returns a Mailto strategy.
func NewMailto(links LinkFinder, opener Opener, clk clock.Clocker, opts ...MailtoOption) *Mailto {
	m := &Mailto{
		links:     links,
		opener:    opener,
		clock:     clk,
		delay:     DefaultMailtoDelay,
		recipient: contactmail.DefaultRecipient,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// URL returns the mailto: target for s.
func (m *Mailto) URL(s Submission) string {
	recipient := m.recipient
	if m.links != nil {
		if href, ok := m.links.MailtoHref(); ok {
			if addr, ok := contactmail.Recipient(href); ok {
				recipient = addr
			}
		}
	}

	return contactmail.MailtoURL(recipient, s.Name, s.Email, s.Message)
}

// Dispatch opens the compose window and waits the configured delay.
func (m *Mailto) Dispatch(ctx context.Context, s Submission) (Result, error) {
	if err := m.opener.Open(m.URL(s)); err != nil {
		return Result{}, err
	}

	if err := clock.Sleep(ctx, m.clock, m.delay); err != nil {
		return Result{}, err
	}

	return Result{Success: true}, nil
}
