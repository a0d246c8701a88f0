package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/folio/internal/contact/entity"
	"github.com/shandysiswandi/folio/internal/pkg/goerror"
	"github.com/shandysiswandi/folio/internal/pkg/idempotency"
	"github.com/shandysiswandi/folio/internal/pkg/validator"
)

type SendMessageInput struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,looseemail"`
	Message        string `validate:"required"`
	RemoteIP       string
	IdempotencyKey string
}

func (s *Usecase) SendMessage(ctx context.Context, in SendMessageInput) error {
	ctx, span := s.startSpan(ctx, "SendMessage")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)

	if err := s.validator.Validate(in); err != nil {
		return invalidInput(in, err)
	}

	msg := entity.Message{
		ID:         s.uid.Generate(),
		Name:       in.Name,
		Email:      in.Email,
		Body:       in.Message,
		RemoteIP:   in.RemoteIP,
		ReceivedAt: s.clock.Now(),
	}

	deliver := func(ctx context.Context) error {
		return s.deliver(ctx, msg)
	}

	var err error
	if s.idemp != nil && in.IdempotencyKey != "" && s.cfg.GetBool("modules.contact.idempotency.enabled") {
		err = s.idemp.Exec(ctx, in.IdempotencyKey, deliver,
			idempotency.WithRetryFailed(),
			idempotency.WithLockDuration(s.cfg.GetSecond("modules.contact.idempotency.lock_seconds")),
			idempotency.WithStateTTL(s.cfg.GetMinute("modules.contact.idempotency.ttl_minutes")),
		)
	} else {
		err = deliver(ctx)
	}

	switch {
	case err == nil:
		slog.InfoContext(ctx, "contact message delivered", "message_id", msg.ID, "delivery", s.delivery().String())
		return nil
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		slog.InfoContext(ctx, "contact message replayed", "idempotency_key", in.IdempotencyKey)
		return nil
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		return goerror.NewBusiness(MsgInProgress, goerror.CodeConflict)
	default:
		slog.ErrorContext(ctx, "failed to deliver contact message", "message_id", msg.ID, "delivery", s.delivery().String(), "error", err)
		return goerror.NewServerMsg(err, MsgSendFailed)
	}
}

func (s *Usecase) delivery() entity.Delivery {
	return entity.DeliveryFromString(s.cfg.GetString("modules.contact.delivery"))
}

func (s *Usecase) deliver(ctx context.Context, msg entity.Message) error {
	if s.delivery() == entity.DeliveryMessaging && s.repoMessaging != nil {
		return s.repoMessaging.PublishMessageReceived(ctx, msg)
	}

	return s.sendMail(ctx, msg)
}

// invalidInput reports every failed field; the headline mirrors the browser
// form: missing fields first, then the email shape.
func invalidInput(in SendMessageInput, err error) error {
	var fields map[string]string
	var errV10 validator.V10ValidationError
	if errors.As(err, &errV10) {
		fields = errV10.Values()
	}

	msg := MsgInvalidEmail
	if in.Name == "" || in.Email == "" || in.Message == "" {
		msg = MsgFillAllFields
	}

	kv := lo.FlatMap(lo.Keys(fields), func(k string, _ int) []string {
		return []string{k, fields[k]}
	})

	return goerror.NewInvalidInputMsg(msg, kv...)
}
