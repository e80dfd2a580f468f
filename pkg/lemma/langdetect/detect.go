// Package langdetect resolves a language tag for input text.
//
// Detection is a pluggable strategy behind a stable interface. The deployed
// configuration pins analysis to Russian; the pin is expressed as the Fixed
// strategy rather than a hidden special case, so a heuristic classifier can
// be swapped in through configuration alone.
package langdetect

import "unicode"

// Tag is a language tag from the closed set supported by the service.
type Tag string

const (
	Russian Tag = "ru"
	English Tag = "en"
	Unknown Tag = "unknown"
)

// Valid reports whether t belongs to the supported set.
func Valid(t Tag) bool {
	return t == Russian || t == English || t == Unknown
}

// Detector resolves a language tag for a text.
type Detector interface {
	Detect(text string) Tag
}

// Fixed always returns the configured tag.
type Fixed Tag

// Detect implements Detector.
func (f Fixed) Detect(string) Tag { return Tag(f) }

// Heuristic classifies by script: whichever of the Cyrillic or Latin
// alphabets contributes more letters wins. Best effort only; texts without
// letters come back Unknown.
type Heuristic struct{}

// Detect implements Detector.
func (Heuristic) Detect(text string) Tag {
	var cyrillic, latin int
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}

	switch {
	case cyrillic == 0 && latin == 0:
		return Unknown
	case cyrillic >= latin:
		return Russian
	default:
		return English
	}
}
