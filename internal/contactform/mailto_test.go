package contactform

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shandysiswandi/folio/internal/pkg/clock"
	"github.com/shandysiswandi/folio/internal/shared/contactmail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailto_URL(t *testing.T) {
	sub := Submission{Name: "Bo", Email: "bo@z.com", Message: "Hello there"}

	t.Run("page link", func(t *testing.T) {
		m := NewMailto(fakeLinks{href: "mailto:owner@site.com", ok: true}, &fakeOpener{}, clock.New())

		u, err := url.Parse(m.URL(sub))
		require.NoError(t, err)

		assert.Equal(t, "mailto", u.Scheme)
		assert.Equal(t, "owner@site.com", u.Opaque)
		assert.Equal(t, "Portfolio Contact from Bo", u.Query().Get("subject"))
		assert.Contains(t, u.Query().Get("body"), "Bo")
		assert.Contains(t, u.Query().Get("body"), "Hello there")
		assert.Contains(t, u.RawQuery, "Hello%20there")
	})

	t.Run("escaped page link keeps subject and body", func(t *testing.T) {
		m := NewMailto(fakeLinks{href: "mailto:sales%23eu@site.com", ok: true}, &fakeOpener{}, clock.New())

		u, err := url.Parse(m.URL(sub))
		require.NoError(t, err)

		assert.Equal(t, "sales%23eu@site.com", u.Opaque)
		assert.Empty(t, u.Fragment)
		assert.Equal(t, "Portfolio Contact from Bo", u.Query().Get("subject"))
		assert.Contains(t, u.Query().Get("body"), "Hello there")
	})

	t.Run("no link falls back", func(t *testing.T) {
		m := NewMailto(fakeLinks{}, &fakeOpener{}, clock.New())
		assert.Contains(t, m.URL(sub), "mailto:"+contactmail.DefaultRecipient+"?")
	})

	t.Run("configured fallback", func(t *testing.T) {
		m := NewMailto(nil, &fakeOpener{}, clock.New(), WithFallbackRecipient("me@folio.dev"))
		assert.Contains(t, m.URL(sub), "mailto:me@folio.dev?")
	})

	t.Run("link without address falls back", func(t *testing.T) {
		m := NewMailto(fakeLinks{href: "mailto:", ok: true}, &fakeOpener{}, clock.New())
		assert.Contains(t, m.URL(sub), "mailto:"+contactmail.DefaultRecipient+"?")
	})
}

func TestMailto_Dispatch(t *testing.T) {
	sub := Submission{Name: "Bo", Email: "bo@z.com", Message: "Hello"}

	t.Run("opens then waits", func(t *testing.T) {
		// Arrange
		clk := clock.NewFake(time.Unix(0, 0))
		opener := &fakeOpener{}
		m := NewMailto(fakeLinks{}, opener, clk, WithDelay(2*time.Second))

		// Act
		done := make(chan error, 1)
		go func() {
			res, err := m.Dispatch(context.Background(), sub)
			if err == nil && !res.Success {
				err = errors.New("not successful")
			}
			done <- err
		}()

		// Assert
		require.Eventually(t, func() bool { return clk.Pending() == 1 }, time.Second, time.Millisecond)
		assert.Len(t, opener.opened(), 1)

		clk.Advance(time.Second)
		select {
		case <-done:
			t.Fatal("dispatch returned before the delay elapsed")
		default:
		}

		clk.Advance(time.Second)
		assert.NoError(t, <-done)
	})

	t.Run("opener error", func(t *testing.T) {
		boom := errors.New("popup blocked")
		m := NewMailto(fakeLinks{}, &fakeOpener{err: boom}, clock.NewFake(time.Time{}))

		_, err := m.Dispatch(context.Background(), sub)

		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		clk := clock.NewFake(time.Unix(0, 0))
		m := NewMailto(fakeLinks{}, &fakeOpener{}, clk)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			_, err := m.Dispatch(ctx, sub)
			done <- err
		}()
		require.Eventually(t, func() bool { return clk.Pending() == 1 }, time.Second, time.Millisecond)

		cancel()

		assert.ErrorIs(t, <-done, context.Canceled)
		assert.Zero(t, clk.Pending())
	})

	t.Run("zero delay", func(t *testing.T) {
		m := NewMailto(fakeLinks{}, &fakeOpener{}, clock.NewFake(time.Time{}), WithDelay(0))

		res, err := m.Dispatch(context.Background(), sub)

		require.NoError(t, err)
		assert.True(t, res.Success)
	})
}
