package inbound

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shandysiswandi/folio/internal/contact/usecase"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/messaging"
	"github.com/shandysiswandi/folio/internal/pkg/uid"
	"github.com/shandysiswandi/folio/internal/shared/event"
)

type MQHandler struct {
	uc   ucConsumer
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, msg messaging.Message) context.Context {
	if cID := msg.Header(event.HeaderCorrelationID); cID != "" {
		return instrument.SetCorrelationID(ctx, cID)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) MessageReceivedMail(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg)

	ctx, span := h.ins.Tracer("contact.inbound.mq").Start(ctx, "MessageReceivedMail")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: contact message received", "msg_id", msg.ID())

	var payload event.ContactMessageReceivedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of contact message received", "msg_id", msg.ID(), "error", err)
		return nil
	}

	if err := h.uc.ConsumeMessageReceived(ctx, usecase.ConsumeMessageReceivedInput{
		ID:         payload.ID,
		Name:       payload.Name,
		Email:      payload.Email,
		Message:    payload.Message,
		RemoteIP:   payload.RemoteIP,
		ReceivedAt: time.Unix(payload.ReceivedAt, 0),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume contact message received", "msg_id", msg.ID(), "error", err)
		return err
	}

	return nil
}
