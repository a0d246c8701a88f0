package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"github.com/shandysiswandi/folio/internal/pkg/config"
	"github.com/shandysiswandi/folio/internal/pkg/goroutine"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/messaging"
	"github.com/shandysiswandi/folio/internal/pkg/uid"
	"github.com/shandysiswandi/folio/internal/shared/event"
)

type mqConsumer struct {
	name    string
	source  string // destination the publisher sent to
	handler messaging.Handler
}

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	consumer messaging.Consumer,
	uuid uid.StringID,
	uc ucConsumer,
	ins instrument.Instrumentation,
) []string {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enabled := cfg.GetArray("modules.contact.consumer_names")
	concurrency := max(cfg.GetInt("modules.contact.consumer_concurrency"), 1)

	consumers := lo.Filter([]mqConsumer{
		{
			name:    event.ContactMessageReceivedConsumerMail,
			source:  event.ContactMessageReceivedDestination,
			handler: mqHandler.MessageReceivedMail,
		},
	}, func(c mqConsumer, _ int) bool {
		return slices.Contains(enabled, c.name)
	})

	for _, c := range consumers {
		routine.Go(ctx, func(pCtx context.Context) error {
			slog.InfoContext(ctx, "Running job for handling consumer", "consumer", c.name)
			return consumer.Consume(pCtx,
				c.source,
				c.handler,
				messaging.WithGroup(c.name),
				messaging.WithAutoAck(true),
				messaging.WithConcurrency(concurrency),
				messaging.WithMaxInFlight(concurrency),
			)
		})
	}

	return lo.Map(consumers, func(c mqConsumer, _ int) string { return c.name })
}
