package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLowerSnake(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"Name":           "name",
		"RemoteIP":       "remote_ip",
		"HTTPServer":     "http_server",
		"IdempotencyKey": "idempotency_key",
		"Page2Title":     "page2_title",
		"already_snake":  "already_snake",
		"CredentialURL":  "credential_url",
	}

	for in, want := range tests {
		assert.Equal(t, want, ToLowerSnake(in), in)
	}
}
