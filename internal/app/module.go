package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/folio/internal/contact"
	"github.com/shandysiswandi/folio/internal/portfolio"
)

func (a *App) initModules() {
	var recipients contact.RecipientSource

	if a.config.GetBool("modules.portfolio.enabled") {
		mod, err := portfolio.New(portfolio.Dependency{
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Validator:  a.validator,
			Storage:    a.storage,
		})
		if err != nil {
			slog.Error("failed to init module portfolio", "error", err)
			os.Exit(1)
		}
		recipients = mod
	}

	if a.config.GetBool("modules.contact.enabled") {
		if err := contact.New(contact.Dependency{
			Ctx:         a.ctx,
			Router:      a.router,
			Goroutine:   a.goroutine,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			UUID:        a.uuid,
			Clock:       a.clock,
			Validator:   a.validator,
			Mail:        a.mail,
			Messaging:   a.messaging,
			Idempotency: a.idemp,
			Recipients:  recipients,
		}); err != nil {
			slog.Error("failed to init module contact", "error", err)
			os.Exit(1)
		}
	}
}
