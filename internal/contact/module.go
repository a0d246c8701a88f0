package contact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/folio/internal/contact/entity"
	"github.com/shandysiswandi/folio/internal/contact/inbound"
	"github.com/shandysiswandi/folio/internal/contact/outbound/email"
	"github.com/shandysiswandi/folio/internal/contact/outbound/mq"
	"github.com/shandysiswandi/folio/internal/contact/usecase"
	"github.com/shandysiswandi/folio/internal/pkg/clock"
	"github.com/shandysiswandi/folio/internal/pkg/config"
	"github.com/shandysiswandi/folio/internal/pkg/goroutine"
	"github.com/shandysiswandi/folio/internal/pkg/idempotency"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/mail"
	"github.com/shandysiswandi/folio/internal/pkg/messaging"
	"github.com/shandysiswandi/folio/internal/pkg/router"
	"github.com/shandysiswandi/folio/internal/pkg/uid"
	"github.com/shandysiswandi/folio/internal/pkg/validator"
)

// ErrMessagingRequired is returned when messaging delivery is configured
// without a broker client.
var ErrMessagingRequired = errors.New("contact: messaging delivery requires a messaging client")

// RecipientSource supplies the default recipient, typically the portfolio profile.
type RecipientSource = usecase.RecipientSource

type Dependency struct {
	Ctx         context.Context
	Router      *router.Router             `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	Mail        mail.Mail                  `validate:"required"`
	Messaging   messaging.Messaging
	Idempotency idempotency.Idempotency
	Recipients  RecipientSource
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	delivery := entity.DeliveryFromString(dep.Config.GetString("modules.contact.delivery"))
	if delivery == entity.DeliveryMessaging && dep.Messaging == nil {
		return ErrMessagingRequired
	}

	ucDep := usecase.Dependency{
		Config:      dep.Config,
		Instrument:  dep.Instrument,
		UID:         dep.UID,
		Clock:       dep.Clock,
		Validator:   dep.Validator,
		Idempotency: dep.Idempotency,
		RepoMail:    email.New(dep.Mail, dep.Instrument),
		Recipients:  dep.Recipients,
	}
	if dep.Messaging != nil {
		ucDep.RepoMessaging = mq.NewMessaging(dep.Messaging, dep.Instrument)
	}

	uc := usecase.New(ucDep)

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	if dep.Ctx != nil && dep.Messaging != nil {
		names := inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
		slog.Info("contact consumers registered", "consumers", names)
	}

	slog.Info("contact module ready", "delivery", delivery.String())
	return nil
}
