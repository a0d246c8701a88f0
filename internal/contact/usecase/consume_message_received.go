package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/folio/internal/contact/entity"
)

type ConsumeMessageReceivedInput struct {
	ID         int64  `validate:"required,gt=0"`
	Name       string `validate:"required"`
	Email      string `validate:"required,looseemail"`
	Message    string `validate:"required"`
	RemoteIP   string
	ReceivedAt time.Time
}

// ConsumeMessageReceived delivers a brokered contact message by mail.
// Invalid payloads are dropped; delivery errors are returned so the broker
// redelivers.
func (s *Usecase) ConsumeMessageReceived(ctx context.Context, in ConsumeMessageReceivedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeMessageReceived")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "message_id", in.ID, "error", err)
		return nil
	}

	if err := s.sendMail(ctx, entity.Message{
		ID:         in.ID,
		Name:       in.Name,
		Email:      in.Email,
		Body:       in.Message,
		RemoteIP:   in.RemoteIP,
		ReceivedAt: in.ReceivedAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send contact message email", "message_id", in.ID, "error", err)
		return err
	}

	slog.InfoContext(ctx, "contact message delivered", "message_id", in.ID, "delivery", entity.DeliveryMessaging.String())
	return nil
}
