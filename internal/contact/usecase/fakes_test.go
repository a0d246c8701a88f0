package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/folio/internal/contact/entity"
	"github.com/shandysiswandi/folio/internal/pkg/clock"
	"github.com/shandysiswandi/folio/internal/pkg/config"
	"github.com/shandysiswandi/folio/internal/pkg/idempotency"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/mail"
	"github.com/shandysiswandi/folio/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type fakeMail struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakePublisher struct {
	published []entity.Message
	err       error
}

func (f *fakePublisher) PublishMessageReceived(_ context.Context, msg entity.Message) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

type fixedID int64

func (f fixedID) Generate() int64 { return int64(f) }

type staticRecipient string

func (s staticRecipient) ContactEmail(context.Context) string { return string(s) }

// fakeIdempotency keeps key state in memory with the same outcomes as the
// redis tracker.
type fakeIdempotency struct {
	state map[string]idempotency.State
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	switch f.state[key] {
	case idempotency.StateInProgress:
		return idempotency.ErrAlreadyInProgress
	case idempotency.StateCompleted:
		return idempotency.ErrAlreadyCompleted
	}

	if err := fn(ctx); err != nil {
		f.state[key] = idempotency.StateFailed
		return err
	}
	f.state[key] = idempotency.StateCompleted
	return nil
}

type fixture struct {
	uc     *Usecase
	mail   *fakeMail
	pub    *fakePublisher
	idemp  *fakeIdempotency
	config *config.Viper
}

func newFixture(t *testing.T, yaml string) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	f := &fixture{
		mail:   &fakeMail{},
		pub:    &fakePublisher{},
		idemp:  &fakeIdempotency{state: map[string]idempotency.State{}},
		config: cfg,
	}
	f.uc = New(Dependency{
		Config:        cfg,
		Instrument:    instrument.NewNoop(),
		UID:           fixedID(42),
		Clock:         clock.NewFake(testNow),
		Validator:     v,
		Idempotency:   f.idemp,
		RepoMail:      f.mail,
		RepoMessaging: f.pub,
		Recipients:    staticRecipient("owner@folio.dev"),
	})
	return f
}
