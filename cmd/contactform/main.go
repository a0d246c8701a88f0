//go:build js && wasm

// Command contactform drives the portfolio contact form from WebAssembly.
package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/shandysiswandi/folio/internal/contactform"
	"github.com/shandysiswandi/folio/internal/contactform/dom"
	"github.com/shandysiswandi/folio/internal/pkg/clock"
	"github.com/shandysiswandi/folio/internal/pkg/config"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/uid"
)

//go:embed config.yaml
var rawConfig []byte

func main() {
	cfg, err := config.NewViperFromBytes("yaml", rawConfig)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	instrument.SetupLogging(os.Stdout, cfg.GetString("app.name"), nil, cfg.GetArray("instrument.mask_fields"))

	doc := dom.CurrentDocument()
	win := dom.CurrentWindow()

	page, err := dom.FindPage(doc, cfg.GetString("contactform.form_id"))
	if err != nil {
		slog.Info("contact form not on this page", "error", err)
		return
	}

	if v := page.Data("dispatch"); v != "" {
		cfg.Set("contactform.dispatch", v)
	}
	if v := page.Data("endpoint"); v != "" {
		cfg.Set("contactform.endpoint", v)
	}

	clk := clock.New()

	strategy, err := newStrategy(cfg, doc, win, clk)
	if err != nil {
		slog.Error("failed to init dispatch strategy", "error", err)
		return
	}

	handler, err := contactform.NewHandler(page.Form, strategy, contactform.NewFeedback(page.Slot, clk))
	if err != nil {
		slog.Error("failed to init contact form handler", "error", err)
		return
	}

	timeout := cfg.GetSecond("contactform.timeout_seconds")
	page.OnSubmit(func() {
		// js callbacks must not block; the fetch round trip runs off the event loop.
		go func() {
			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			err := handler.Submit(ctx)
			if contactform.Reportable(err) {
				slog.WarnContext(ctx, "contact form submission failed", "error", err)
			} else if err != nil {
				slog.DebugContext(ctx, "contact form submission not sent", "error", err)
			}
		}()
	})

	slog.Info("contact form ready", "dispatch", cfg.GetString("contactform.dispatch"))
	select {}
}

func newStrategy(cfg config.Config, doc dom.Document, win dom.Window, clk clock.Clocker) (contactform.Strategy, error) {
	if strings.EqualFold(cfg.GetString("contactform.dispatch"), "mailto") {
		return contactform.NewMailto(doc, win, clk,
			contactform.WithDelay(cfg.GetMillisecond("contactform.mailto.delay_milliseconds")),
			contactform.WithFallbackRecipient(cfg.GetString("contactform.mailto.fallback_recipient")),
		), nil
	}

	endpoint, err := contactform.ResolveEndpoint(win.Href(), cfg.GetString("contactform.endpoint"))
	if err != nil {
		return nil, err
	}

	return contactform.NewRemote(endpoint, http.DefaultClient, uid.NewUUID()), nil
}
