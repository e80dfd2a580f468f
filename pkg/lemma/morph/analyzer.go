// Package morph provides morphological normalization for the analysis
// pipeline: word form → (lemma, grammatical category).
//
// The concrete analyzer is a dictionary compiled into a SQLite file (see
// cmd/dictgen). It is expensive to construct, so a process-wide Provider
// builds it lazily on first demand, and a bounded LRU Resolver memoizes
// lookups across requests.
package morph

import (
	"fmt"
	"os"
	"strings"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/pos"
)

// Parse is a single candidate reading of a word form. NormalForm is the
// lowercase lemma.
type Parse struct {
	NormalForm string
	Category   pos.Category
}

// Analyzer produces candidate parses for a lowercased word form, most
// confident first. An empty result means the analyzer has no reading for
// the word; callers treat that as a skip, not an error.
type Analyzer interface {
	Parses(word string) []Parse
}

// Entry is one dictionary row: an inflected form mapping to a parse.
type Entry struct {
	Form  string
	Parse Parse
}

// Dictionary is an in-memory word-form table. It is immutable after
// construction and therefore safe for concurrent use without locking.
type Dictionary struct {
	forms map[string][]Parse
}

// NewDictionary builds a dictionary from entries. Per-form entry order is
// preserved as confidence order: the first parse recorded for a form is the
// one Parses returns first.
func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{forms: make(map[string][]Parse, len(entries))}
	for _, e := range entries {
		form := strings.ToLower(e.Form)
		parse := Parse{
			NormalForm: strings.ToLower(e.Parse.NormalForm),
			Category:   e.Parse.Category,
		}
		d.forms[form] = append(d.forms[form], parse)
	}
	return d
}

// Parses implements Analyzer.
func (d *Dictionary) Parses(word string) []Parse {
	return d.forms[strings.ToLower(word)]
}

// Len returns the number of distinct word forms.
func (d *Dictionary) Len() int { return len(d.forms) }

// LoadTextEntries reads a source dictionary in pipe-delimited form:
//
//	form|lemma|category
//
// Blank lines and lines starting with # are skipped; lines with fewer than
// three fields are ignored. This is the input format for cmd/dictgen.
func LoadTextEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		entries = append(entries, Entry{
			Form: parts[0],
			Parse: Parse{
				NormalForm: parts[1],
				Category:   pos.Parse(parts[2]),
			},
		})
	}

	return entries, nil
}
