package contactform

import (
	"sync"
	"time"

	"github.com/shandysiswandi/folio/internal/pkg/clock"
)

const (
	// FeedbackVisible is how long a message stays fully visible.
	FeedbackVisible = 5 * time.Second
	// FeedbackFade is the fade-out transition before removal.
	FeedbackFade = 500 * time.Millisecond
)

// Kind distinguishes success from error feedback.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Style is the inline presentation of a feedback message.
type Style struct {
	Background string
	Color      string
	Border     string
}

// Style returns the colors used for k.
func (k Kind) Style() Style {
	if k == KindSuccess {
		return Style{Background: "#d1fae5", Color: "#065f46", Border: "2px solid #10b981"}
	}
	return Style{Background: "#fee2e2", Color: "#991b1b", Border: "2px solid #ef4444"}
}

// FeedbackMessage is a transient notice shown next to the form.
type FeedbackMessage struct {
	Text string
	Kind Kind
}

// Surface is the place next to the form where feedback is rendered.
type Surface interface {
	// Clear removes every feedback element currently rendered.
	Clear()
	// Append renders msg and returns a handle to the new element.
	Append(msg FeedbackMessage) Element
}

// Element is one rendered feedback message.
type Element interface {
	FadeOut(d time.Duration)
	Remove()
}

// Feedback renders at most one FeedbackMessage at a time and removes it after
// FeedbackVisible plus FeedbackFade.
type Feedback struct {
	surface Surface
	clock   clock.Clocker

	mu      sync.Mutex
	gen     uint64
	current *notice
}

type notice struct {
	msg   FeedbackMessage
	el    Element
	timer clock.Timer
}

// NewFeedback returns a Feedback drawing on surface with timers from clk.
func NewFeedback(surface Surface, clk clock.Clocker) *Feedback {
	return &Feedback{surface: surface, clock: clk}
}

// Show replaces any visible message with msg and schedules its removal.
// Timers belonging to the replaced message are stopped.
func (f *Feedback) Show(msg FeedbackMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current != nil {
		f.current.timer.Stop()
		f.current = nil
	}
	f.surface.Clear()

	f.gen++
	gen := f.gen
	n := &notice{msg: msg, el: f.surface.Append(msg)}
	n.timer = f.clock.AfterFunc(FeedbackVisible, func() { f.fade(gen) })
	f.current = n
}

// Current returns the message on screen, if any.
func (f *Feedback) Current() (FeedbackMessage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current == nil {
		return FeedbackMessage{}, false
	}
	return f.current.msg, true
}

func (f *Feedback) fade(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen || f.current == nil {
		return
	}
	f.current.el.FadeOut(FeedbackFade)
	f.current.timer = f.clock.AfterFunc(FeedbackFade, func() { f.remove(gen) })
}

func (f *Feedback) remove(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen || f.current == nil {
		return
	}
	f.current.el.Remove()
	f.current = nil
}
