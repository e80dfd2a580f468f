// Package pos defines the coarse grammatical categories attached to lemma
// resolutions and the fixed function-word filter built on top of them.
//
// Tags follow the OpenCorpora convention used by Russian morphological
// dictionaries. The category is only used for filtering, never displayed.
package pos

// Category is a coarse part-of-speech tag.
type Category string

const (
	Noun         Category = "NOUN"
	Verb         Category = "VERB"
	Adjective    Category = "ADJF"
	Adverb       Category = "ADVB"
	Pronoun      Category = "NPRO"
	Numeral      Category = "NUMR"
	Preposition  Category = "PREP"
	Conjunction  Category = "CONJ"
	Particle     Category = "PRCL"
	Interjection Category = "INTJ"
	Unknown      Category = "UNKN"
)

var known = map[Category]struct{}{
	Noun: {}, Verb: {}, Adjective: {}, Adverb: {}, Pronoun: {},
	Numeral: {}, Preposition: {}, Conjunction: {}, Particle: {},
	Interjection: {}, Unknown: {},
}

// functionWords is the fixed set of categories excluded from the content
// stream. Function words carry no lexical signal for n-gram statistics.
var functionWords = map[Category]struct{}{
	Preposition:  {},
	Conjunction:  {},
	Particle:     {},
	Interjection: {},
}

// IsFunctionWord reports whether lemmas of the given category are dropped
// when building the content lemma stream. The raw stream keeps them.
func IsFunctionWord(c Category) bool {
	_, ok := functionWords[c]
	return ok
}

// Parse converts a dictionary tag string into a Category. Unrecognized tags
// map to Unknown rather than failing: an exotic tag only means the word is
// not a function word.
func Parse(tag string) Category {
	c := Category(tag)
	if _, ok := known[c]; ok {
		return c
	}
	return Unknown
}
