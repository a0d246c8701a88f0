package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shandysiswandi/folio/internal/pkg/goerror"
	"github.com/shandysiswandi/folio/internal/pkg/idempotency"
	"github.com/shandysiswandi/folio/internal/shared/contactmail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mailDeliveryConfig = `
modules:
  contact:
    delivery: mail
    idempotency:
      enabled: true
`

func validInput() SendMessageInput {
	return SendMessageInput{
		Name:    "  Ada Lovelace ",
		Email:   "ada@example.com",
		Message: " Hello there \n",
	}
}

func TestSendMessage_MailDelivery(t *testing.T) {
	// Arrange
	f := newFixture(t, mailDeliveryConfig)

	// Act
	err := f.uc.SendMessage(context.Background(), validInput())

	// Assert
	require.NoError(t, err)
	require.Len(t, f.mail.sent, 1)
	assert.Empty(t, f.pub.published)

	sent := f.mail.sent[0]
	assert.Equal(t, []string{"owner@folio.dev"}, sent.To)
	assert.Equal(t, "ada@example.com", sent.ReplyTo)
	assert.Equal(t, "Portfolio Contact from Ada Lovelace", sent.Subject)
	assert.Equal(t, contactmail.Body("Ada Lovelace", "ada@example.com", "Hello there"), sent.TextBody)
}

func TestSendMessage_ConfiguredRecipientWins(t *testing.T) {
	// Arrange
	f := newFixture(t, mailDeliveryConfig)
	f.config.Set("modules.contact.recipient", "inbox@folio.dev")

	// Act
	err := f.uc.SendMessage(context.Background(), validInput())

	// Assert
	require.NoError(t, err)
	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, []string{"inbox@folio.dev"}, f.mail.sent[0].To)
}

func TestSendMessage_MessagingDelivery(t *testing.T) {
	// Arrange
	f := newFixture(t, `
modules:
  contact:
    delivery: messaging
`)

	// Act
	err := f.uc.SendMessage(context.Background(), validInput())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, f.mail.sent)
	require.Len(t, f.pub.published, 1)

	msg := f.pub.published[0]
	assert.Equal(t, int64(42), msg.ID)
	assert.Equal(t, "Ada Lovelace", msg.Name)
	assert.Equal(t, "Hello there", msg.Body)
	assert.Equal(t, testNow, msg.ReceivedAt)
}

func TestSendMessage_Validation(t *testing.T) {
	tests := []struct {
		name       string
		in         SendMessageInput
		wantMsg    string
		wantFields []string
	}{
		{
			name:       "whitespace name",
			in:         SendMessageInput{Name: "   ", Email: "ada@example.com", Message: "hi"},
			wantMsg:    MsgFillAllFields,
			wantFields: []string{"name"},
		},
		{
			name:       "everything empty",
			in:         SendMessageInput{},
			wantMsg:    MsgFillAllFields,
			wantFields: []string{"name", "email", "message"},
		},
		{
			name:       "email without dot",
			in:         SendMessageInput{Name: "Ada", Email: "ada@example", Message: "hi"},
			wantMsg:    MsgInvalidEmail,
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t, mailDeliveryConfig)

			// Act
			err := f.uc.SendMessage(context.Background(), tt.in)

			// Assert
			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
			assert.Equal(t, tt.wantMsg, gerr.Msg())
			for _, field := range tt.wantFields {
				assert.Contains(t, gerr.Fields(), field)
			}
			assert.Empty(t, f.mail.sent)
		})
	}
}

func TestSendMessage_DeliveryFailure(t *testing.T) {
	// Arrange
	f := newFixture(t, mailDeliveryConfig)
	cause := errors.New("smtp: connection refused")
	f.mail.err = cause

	// Act
	err := f.uc.SendMessage(context.Background(), validInput())

	// Assert
	require.ErrorIs(t, err, cause)
	assert.True(t, goerror.IsType(err, goerror.TypeServer))

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, MsgSendFailed, gerr.Msg())
}

func TestSendMessage_IdempotentReplay(t *testing.T) {
	// Arrange
	f := newFixture(t, mailDeliveryConfig)
	in := validInput()
	in.IdempotencyKey = "0190f3a4-key"

	// Act
	first := f.uc.SendMessage(context.Background(), in)
	second := f.uc.SendMessage(context.Background(), in)

	// Assert
	require.NoError(t, first)
	require.NoError(t, second)
	assert.Len(t, f.mail.sent, 1)
}

func TestSendMessage_IdempotencyInProgress(t *testing.T) {
	// Arrange
	f := newFixture(t, mailDeliveryConfig)
	f.idemp.state["busy-key"] = idempotency.StateInProgress
	in := validInput()
	in.IdempotencyKey = "busy-key"

	// Act
	err := f.uc.SendMessage(context.Background(), in)

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusConflict, gerr.StatusCode())
	assert.Empty(t, f.mail.sent)
}

func TestSendMessage_IdempotencyDisabledByConfig(t *testing.T) {
	// Arrange
	f := newFixture(t, `
modules:
  contact:
    delivery: mail
`)
	in := validInput()
	in.IdempotencyKey = "ignored"

	// Act
	require.NoError(t, f.uc.SendMessage(context.Background(), in))
	require.NoError(t, f.uc.SendMessage(context.Background(), in))

	// Assert
	assert.Len(t, f.mail.sent, 2)
	assert.Empty(t, f.idemp.state)
}
