package game

import (
	"regexp"
	"strings"
)

var (
	// punctRe matches punctuation and symbols; each match is replaced with a
	// single space so "winston-salem" and "winston salem" normalize alike.
	punctRe = regexp.MustCompile(`[^\w\s]`)

	// cityWordRe matches the standalone word "city" only. "city" inside a
	// longer word is untouched.
	cityWordRe = regexp.MustCompile(`\bcity\b`)

	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// Normalize converts a city name or user guess into its canonical lookup
// key. It is deterministic and total: garbage input yields an empty or
// near-empty string, never an error.
//
// The pipeline, in order: trim and lowercase; replace "&" with " and ";
// replace punctuation with spaces; expand a whole-string alias match and
// re-strip punctuation from the target (targets like "st. louis" carry
// punctuation); drop the standalone word "city"; collapse whitespace.
//
// Normalize(Normalize(x)) == Normalize(x) for all x.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "&", " and ")
	s = punctRe.ReplaceAllString(s, " ")
	if target, ok := aliases[s]; ok {
		s = punctRe.ReplaceAllString(target, " ")
	}
	s = cityWordRe.ReplaceAllString(s, "")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}
