package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start serves HTTP in the background. The returned channel is closed once a
// termination signal arrives or the listener fails.
func (a *App) Start() <-chan struct{} {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr)

		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		stop()

		if a.cancel != nil {
			a.cancel()
		}
		slog.Info("termination requested, shutting down")
	}()

	return done
}

// Stop drains the HTTP server, waits for background consumers and then runs
// the closers in registration order.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	slog.InfoContext(ctx, "waiting for background goroutines")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "background goroutine returned an error", "error", err)
	}

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
			continue
		}
		slog.InfoContext(ctx, "resource closed", "name", closer.name)
	}
	slog.InfoContext(ctx, "application stopped")
}
