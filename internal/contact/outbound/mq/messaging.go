package mq

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/folio/internal/contact/entity"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/messaging"
	"github.com/shandysiswandi/folio/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishMessageReceived(ctx context.Context, msg entity.Message) error {
	ctx, span := m.ins.Tracer("contact.outbound.mq").Start(ctx, "PublishMessageReceived")
	defer span.End()

	body, err := json.Marshal(event.ContactMessageReceivedMessage{
		ID:         msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		Message:    msg.Body,
		RemoteIP:   msg.RemoteIP,
		ReceivedAt: msg.ReceivedAt.Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	headers := map[string]string{}
	if cID := instrument.GetCorrelationID(ctx); cID != "" {
		headers[event.HeaderCorrelationID] = cID
	}

	if _, err := m.client.Publish(ctx, event.ContactMessageReceivedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: headers,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
