package contactmail

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody(t *testing.T) {
	body := Body("Bo", "bo@z.com", "Hello")

	assert.Equal(t, "Name: Bo\nEmail: bo@z.com\n\nMessage:\nHello\n\n---\nSent from portfolio contact form", body)
}

func TestRecipient(t *testing.T) {
	tests := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{href: "mailto:owner@site.com", want: "owner@site.com", wantOK: true},
		{href: "MAILTO:owner@site.com?subject=hi", want: "owner@site.com", wantOK: true},
		{href: "mailto:owner%40site.com", want: "owner%40site.com", wantOK: true},
		{href: "mailto:sales%23eu@site.com", want: "sales%23eu@site.com", wantOK: true},
		{href: "mailto:a%3Fb@site.com?subject=hi", want: "a%3Fb@site.com", wantOK: true},
		{href: "mailto:", want: "", wantOK: false},
		{href: "https://site.com", want: "", wantOK: false},
		{href: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			got, ok := Recipient(tt.href)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "Portfolio%20Contact%20from%20Ada%20%26%20Bo", Escape("Portfolio Contact from Ada & Bo"))
	assert.Equal(t, "a%0Ab", Escape("a\nb"))
	assert.NotContains(t, Escape("x y+z"), "+z")
}

func TestMailtoURL(t *testing.T) {
	// Act
	raw := MailtoURL("owner@site.com", "Bo", "bo@z.com", "Hello there")

	// Assert
	require.True(t, strings.HasPrefix(raw, "mailto:owner@site.com?subject="))
	assert.NotContains(t, raw, " ")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "owner@site.com", u.Opaque)
	assert.Equal(t, "Portfolio Contact from Bo", u.Query().Get("subject"))
	assert.Contains(t, u.Query().Get("body"), "Bo")
	assert.Contains(t, u.Query().Get("body"), "Hello there")
	assert.Contains(t, u.Query().Get("body"), Footer)
}

func TestMailtoURL_EscapedRecipient(t *testing.T) {
	for _, href := range []string{"mailto:sales%23eu@site.com", "mailto:a%3Fb@site.com"} {
		t.Run(href, func(t *testing.T) {
			// Arrange
			recipient, ok := Recipient(href)
			require.True(t, ok)

			// Act
			u, err := url.Parse(MailtoURL(recipient, "Bo", "bo@z.com", "Hello"))

			// Assert
			require.NoError(t, err)
			assert.Equal(t, recipient, u.Opaque)
			assert.Empty(t, u.Fragment)
			assert.Equal(t, "Portfolio Contact from Bo", u.Query().Get("subject"))
			assert.Contains(t, u.Query().Get("body"), "Hello")
		})
	}
}
