package inbound

import (
	"context"

	"github.com/shandysiswandi/folio/internal/contact/usecase"
)

type ucConsumer interface {
	ConsumeMessageReceived(ctx context.Context, in usecase.ConsumeMessageReceivedInput) error
}

type uc interface {
	ucConsumer

	SendMessage(ctx context.Context, in usecase.SendMessageInput) error
}
