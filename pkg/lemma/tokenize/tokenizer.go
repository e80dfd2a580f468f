// Package tokenize segments raw text into ordered word tokens for the
// analysis pipeline.
package tokenize

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase word tokens, preserving source order.
// A token is a maximal run of letters and digits; runs that are not purely
// alphabetic (Latin or Cyrillic) are dropped whole, so "дом5" contributes
// nothing rather than a truncated "дом". Order is load-bearing: n-gram
// adjacency downstream is derived from it.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				if word := current.String(); alphabetic(word) {
					tokens = append(tokens, strings.ToLower(word))
				}
				current.Reset()
			}
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		if word := current.String(); alphabetic(word) {
			tokens = append(tokens, strings.ToLower(word))
		}
	}

	return tokens
}

// alphabetic reports whether every rune belongs to the Latin or Cyrillic
// alphabet.
func alphabetic(s string) bool {
	for _, r := range s {
		if !unicode.Is(unicode.Latin, r) && !unicode.Is(unicode.Cyrillic, r) {
			return false
		}
	}
	return true
}
