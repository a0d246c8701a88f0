package usecase

import (
	"context"
	"strings"

	"github.com/shandysiswandi/folio/internal/contact/entity"
	"github.com/shandysiswandi/folio/internal/pkg/clock"
	"github.com/shandysiswandi/folio/internal/pkg/config"
	"github.com/shandysiswandi/folio/internal/pkg/idempotency"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/mail"
	"github.com/shandysiswandi/folio/internal/pkg/uid"
	"github.com/shandysiswandi/folio/internal/pkg/validator"
	"github.com/shandysiswandi/folio/internal/shared/contactmail"
	"go.opentelemetry.io/otel/trace"
)

const (
	MsgFillAllFields = "Please fill in all fields."
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgReceived      = "Message received! I will get back to you soon."
	MsgSendFailed    = "Failed to send message. Please try again later."
	MsgInProgress    = "Your message is already being sent."
)

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type repoMessaging interface {
	PublishMessageReceived(ctx context.Context, msg entity.Message) error
}

// RecipientSource supplies the address contact messages are delivered to
// when none is configured.
type RecipientSource interface {
	ContactEmail(ctx context.Context) string
}

type Usecase struct {
	cfg           config.Config
	ins           instrument.Instrumentation
	uid           uid.NumberID
	clock         clock.Clocker
	validator     validator.Validator
	idemp         idempotency.Idempotency
	repoMail      repoMail
	repoMessaging repoMessaging
	recipients    RecipientSource
}

type Dependency struct {
	Config        config.Config
	Instrument    instrument.Instrumentation
	UID           uid.NumberID
	Clock         clock.Clocker
	Validator     validator.Validator
	Idempotency   idempotency.Idempotency
	RepoMail      repoMail
	RepoMessaging repoMessaging
	Recipients    RecipientSource
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		cfg:           dep.Config,
		ins:           dep.Instrument,
		uid:           dep.UID,
		clock:         dep.Clock,
		validator:     dep.Validator,
		idemp:         dep.Idempotency,
		repoMail:      dep.RepoMail,
		repoMessaging: dep.RepoMessaging,
		recipients:    dep.Recipients,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("contact.usecase").Start(ctx, name)
}

// recipient is resolved per message so a config reload takes effect
// without a restart.
func (s *Usecase) recipient(ctx context.Context) string {
	if v := strings.TrimSpace(s.cfg.GetString("modules.contact.recipient")); v != "" {
		return v
	}
	if s.recipients != nil {
		if v := strings.TrimSpace(s.recipients.ContactEmail(ctx)); v != "" {
			return v
		}
	}

	return contactmail.DefaultRecipient
}

func (s *Usecase) sendMail(ctx context.Context, msg entity.Message) error {
	return s.repoMail.Send(ctx, mail.Message{
		To:       []string{s.recipient(ctx)},
		ReplyTo:  msg.Email,
		Subject:  contactmail.Subject(msg.Name),
		TextBody: contactmail.Body(msg.Name, msg.Email, msg.Body),
	})
}
