package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeMessageReceived(t *testing.T) {
	tests := []struct {
		name     string
		in       ConsumeMessageReceivedInput
		mailErr  error
		wantErr  bool
		wantSent int
	}{
		{
			name:     "delivers by mail",
			in:       ConsumeMessageReceivedInput{ID: 7, Name: "Ada", Email: "ada@example.com", Message: "hi", ReceivedAt: testNow},
			wantSent: 1,
		},
		{
			name:     "drops invalid payload",
			in:       ConsumeMessageReceivedInput{ID: 7, Name: "Ada", Email: "nope", Message: "hi"},
			wantSent: 0,
		},
		{
			name:    "returns delivery error for redelivery",
			in:      ConsumeMessageReceivedInput{ID: 7, Name: "Ada", Email: "ada@example.com", Message: "hi"},
			mailErr: errors.New("smtp down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t, mailDeliveryConfig)
			f.mail.err = tt.mailErr

			// Act
			err := f.uc.ConsumeMessageReceived(context.Background(), tt.in)

			// Assert
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, f.mail.sent, tt.wantSent)
		})
	}
}
