package pos

import "testing"

func TestIsFunctionWord(t *testing.T) {
	stops := []Category{Preposition, Conjunction, Particle, Interjection}
	for _, c := range stops {
		if !IsFunctionWord(c) {
			t.Errorf("%s should be a function-word category", c)
		}
	}

	content := []Category{Noun, Verb, Adjective, Adverb, Pronoun, Numeral, Unknown}
	for _, c := range content {
		if IsFunctionWord(c) {
			t.Errorf("%s should not be a function-word category", c)
		}
	}
}

func TestParse(t *testing.T) {
	if got := Parse("NOUN"); got != Noun {
		t.Errorf("Parse(NOUN) = %s", got)
	}
	if got := Parse("PREP"); got != Preposition {
		t.Errorf("Parse(PREP) = %s", got)
	}
	// Exotic tags degrade to Unknown, which is never filtered
	if got := Parse("GRND"); got != Unknown {
		t.Errorf("Parse(GRND) = %s, want UNKN", got)
	}
	if IsFunctionWord(Parse("GRND")) {
		t.Error("Unknown category must not be filtered")
	}
}
