package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnnaReese/Citidle/internal/game"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and trims", "  Chicago  ", "chicago"},
		{"punctuation becomes space", "Winston-Salem", "winston salem"},
		{"ampersand expands", "AT&T", "at and t"},
		{"standalone city dropped", "Oklahoma City", "oklahoma"},
		{"city inside a word kept", "Kansas Cityish", "kansas cityish"},
		{"whitespace collapses", "new    york   city", "new york"},
		{"dotted saint form", "St. Louis", "st louis"},
		{"spelled saint form", "Saint Louis", "st louis"},
		{"nickname expands", "nyc", "new york"},
		{"nickname of a City name", "okc", "oklahoma"},
		{"dc maps to washington", "DC", "washington"},
		{"empty input", "", ""},
		{"only punctuation", "?!.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, game.Normalize(tt.in))
		})
	}
}

// Every nickname must normalize to the same key as its canonical spelling,
// so an alias guess and a full-name guess hit the same index bucket.
func TestNormalizeAliasesMatchTargets(t *testing.T) {
	for alias, target := range game.Aliases() {
		assert.Equal(t, game.Normalize(target), game.Normalize(alias),
			"alias %q -> %q", alias, target)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"New York City", "nyc", "St. Louis", "Oklahoma City",
		"AT&T", "Washington DC", "ft worth", "  Los   Angeles  ",
	}
	for _, in := range inputs {
		once := game.Normalize(in)
		assert.Equal(t, once, game.Normalize(once), "input %q", in)
	}
}
