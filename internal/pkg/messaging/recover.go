package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/shandysiswandi/folio/internal/pkg/stacktrace"
)

// handle runs handler with panic recovery and settles msg when autoAck is set
// and the handler has not already done so.
func handle(ctx context.Context, kind string, handler Handler, msg settler, autoAck bool) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			stack := debug.Stack()
			if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
				slog.ErrorContext(ctx, "panic in messaging handler", "kind", kind, "panic", rvr, "stack", paths)
			} else {
				slog.ErrorContext(ctx, "panic in messaging handler", "kind", kind, "panic", rvr, "stack", string(stack))
			}
			err = fmt.Errorf("messaging: panic in %s handler: %v", kind, rvr)
		}

		if !autoAck || msg.responded() {
			return
		}
		if err == nil {
			if aerr := msg.Ack(ctx); aerr != nil {
				slog.WarnContext(ctx, "messaging: ack failed", "kind", kind, "error", aerr)
			}
			return
		}
		if nerr := msg.Nack(ctx); nerr != nil {
			slog.WarnContext(ctx, "messaging: nack failed", "kind", kind, "error", nerr)
		}
	}()

	return handler(ctx, msg)
}

type settler interface {
	Message
	responded() bool
}
