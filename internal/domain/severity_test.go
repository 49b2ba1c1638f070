package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		expected  Severity
	}{
		{"major boundary", 7.0, SeverityMajor},
		{"just below major", 6.9, SeverityStrong},
		{"well above major", 9.1, SeverityMajor},
		{"strong boundary", 5.5, SeverityStrong},
		{"just below strong", 5.4, SeverityModerate},
		{"moderate boundary", 4.0, SeverityModerate},
		{"just below moderate", 3.9, SeverityMinor},
		{"minor boundary", 2.5, SeverityMinor},
		{"just below minor", 2.4, SeverityMicro},
		{"zero", 0, SeverityMicro},
		{"negative magnitude", -0.5, SeverityMicro},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeverityFor(tt.magnitude))
		})
	}
}

func TestSeverityColorsAreDistinct(t *testing.T) {
	tiers := []Severity{SeverityMajor, SeverityStrong, SeverityModerate, SeverityMinor, SeverityMicro}

	seen := map[string]Severity{}
	for _, s := range tiers {
		color := s.Color()
		assert.NotEmpty(t, color)
		if prev, ok := seen[color]; ok {
			t.Fatalf("tiers %s and %s share color %s", prev, s, color)
		}
		seen[color] = s
	}
}

func TestSeverityLabel(t *testing.T) {
	assert.Equal(t, "Major", SeverityMajor.Label())
	assert.Equal(t, "Strong", SeverityStrong.Label())
	assert.Equal(t, "Moderate", SeverityModerate.Label())
	assert.Equal(t, "Minor", SeverityMinor.Label())
	assert.Equal(t, "Micro", SeverityMicro.Label())
}
