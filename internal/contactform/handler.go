package contactform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/folio/internal/pkg/goerror"
	"go.uber.org/atomic"
)

var (
	// ErrBusy is returned by Submit while another submission is in flight.
	ErrBusy = errors.New("contactform: submission already in progress")

	// ErrRejected is the cause of a dispatch whose Result reports no success.
	ErrRejected = errors.New("contactform: submission rejected")

	errMissingElement = errors.New("contactform: form elements, strategy and feedback are required")
)

// Handler owns the submit lifecycle of one contact form.
type Handler struct {
	form     Form
	strategy Strategy
	feedback *Feedback
	busy     *atomic.Bool
}

// NewHandler wires a form to a dispatch strategy and a feedback presenter.
func NewHandler(form Form, strategy Strategy, feedback *Feedback) (*Handler, error) {
	if !form.valid() || strategy == nil || feedback == nil {
		return nil, errMissingElement
	}

	return &Handler{
		form:     form,
		strategy: strategy,
		feedback: feedback,
		busy:     atomic.NewBool(false),
	}, nil
}

// Submit validates the form, dispatches it and shows the outcome.
//
// Validation failures return a goerror validation error and never reach the
// strategy. Dispatch failures return a goerror server error and keep the
// typed input. While a dispatch runs the submit control is disabled and
// labelled LabelSending; its label and state are restored on every exit.
func (h *Handler) Submit(ctx context.Context) error {
	if !h.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer h.busy.Store(false)

	sub := h.form.Read()
	if err := Validate(sub); err != nil {
		var gerr *goerror.Error
		msg := MsgFillAllFields
		if errors.As(err, &gerr) {
			msg = gerr.Msg()
		}
		h.feedback.Show(FeedbackMessage{Text: msg, Kind: KindError})
		return err
	}

	label := h.form.Submit.Label()
	h.form.Submit.SetDisabled(true)
	h.form.Submit.SetLabel(LabelSending)
	defer func() {
		h.form.Submit.SetLabel(label)
		h.form.Submit.SetDisabled(false)
	}()

	res, err := h.dispatch(ctx, sub)
	if err == nil && !res.Success {
		err = ErrRejected
	}
	if err != nil {
		slog.WarnContext(ctx, "contact form dispatch failed", "error", err, "server_message", res.Message)
		h.feedback.Show(FeedbackMessage{Text: MsgSendFailed, Kind: KindError})
		return goerror.NewServerMsg(err, MsgSendFailed)
	}

	h.form.Reset()
	h.feedback.Show(FeedbackMessage{Text: MsgSent, Kind: KindSuccess})
	return nil
}

// Reportable reports whether a Submit error points at a failed dispatch
// rather than a visitor mistake or a repeated click.
func Reportable(err error) bool {
	return err != nil &&
		!errors.Is(err, ErrBusy) &&
		!goerror.IsType(err, goerror.TypeValidation)
}

// Busy reports whether a submission is in flight.
func (h *Handler) Busy() bool {
	return h.busy.Load()
}

func (h *Handler) dispatch(ctx context.Context, sub Submission) (res Result, err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			err = fmt.Errorf("contactform: strategy panicked: %v", rvr)
		}
	}()

	return h.strategy.Dispatch(ctx, sub)
}
