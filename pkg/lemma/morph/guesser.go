package morph

import (
	"strings"
	"unicode/utf8"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/pos"
)

// suffixRule rewrites a Russian inflectional suffix into the suffix of the
// base form. Rules are tried in order, longest suffixes first.
type suffixRule struct {
	suffix      string
	replacement string
	category    pos.Category
}

var suffixRules = []suffixRule{
	{"иями", "ия", pos.Noun},
	{"ями", "я", pos.Noun},
	{"ами", "а", pos.Noun},
	{"ого", "ый", pos.Adjective},
	{"его", "ий", pos.Adjective},
	{"ому", "ый", pos.Adjective},
	{"ему", "ий", pos.Adjective},
	{"ыми", "ый", pos.Adjective},
	{"ими", "ий", pos.Adjective},
	{"ешь", "ть", pos.Verb},
	{"ах", "а", pos.Noun},
	{"ет", "ть", pos.Verb},
	{"ла", "ть", pos.Verb},
	{"ов", "", pos.Noun},
	{"ей", "ь", pos.Noun},
	{"ы", "а", pos.Noun},
	{"у", "а", pos.Noun},
	{"л", "ть", pos.Verb},
	{"а", "", pos.Noun},
}

// minStemRunes guards against stripping a suffix that would leave almost
// nothing of the word.
const minStemRunes = 3

// Guesser produces a rule-based parse for out-of-dictionary words by
// rewriting common Russian inflectional suffixes. Precision is low, so it
// is disabled by default; without it unknown words are skipped entirely.
type Guesser struct{}

// Parses implements Analyzer.
func (Guesser) Parses(word string) []Parse {
	word = strings.ToLower(word)
	for _, rule := range suffixRules {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, rule.suffix)
		if utf8.RuneCountInString(stem) < minStemRunes {
			continue
		}
		return []Parse{{NormalForm: stem + rule.replacement, Category: rule.category}}
	}
	return nil
}

// WithGuesser chains a rule-based guess after dict for words the
// dictionary has no reading for.
func WithGuesser(dict Analyzer) Analyzer {
	return chain{dict: dict}
}

type chain struct {
	dict Analyzer
	g    Guesser
}

func (c chain) Parses(word string) []Parse {
	if parses := c.dict.Parses(word); len(parses) > 0 {
		return parses
	}
	return c.g.Parses(word)
}
