package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTechLogo(t *testing.T) {
	tests := []struct {
		name string
		tech string
		want string
	}{
		{name: "exact", tech: "Python", want: devicon + "python/python-original.svg"},
		{name: "case-insensitive", tech: "postgresql", want: devicon + "postgresql/postgresql-original.svg"},
		{name: "spaced alias", tech: "power bi", want: "https://upload.wikimedia.org/wikipedia/commons/c/cf/New_Power_BI_Logo.svg"},
		{name: "unknown", tech: "Cobol", want: FallbackLogo},
		{name: "empty", tech: "", want: FallbackLogo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TechLogo(tt.tech))
		})
	}
}

func TestTechs(t *testing.T) {
	got := Techs([]string{"Git", "Unknown"})

	assert.Equal(t, []Tech{
		{Name: "Git", Logo: devicon + "git/git-original.svg"},
		{Name: "Unknown", Logo: FallbackLogo},
	}, got)
}
