// Package ngram builds frequency tables over lemma streams and produces
// deterministically ranked result lists from them.
package ngram

import (
	"sort"
	"strings"
)

// Table is a frequency table over k-gram keys for one stream. Keys remember
// first-seen order so that ranking ties break deterministically.
type Table struct {
	k       int
	counts  map[string]int
	order   []string // keys in first-seen order
	windows int      // total window count, before any display truncation
}

// Aggregate slides a window of width k across the stream with step 1 over
// every valid start position and counts each space-joined key. No windows
// are skipped and nothing is deduplicated beyond counting. A stream shorter
// than k yields an empty table.
func Aggregate(stream []string, k int) *Table {
	t := &Table{k: k, counts: make(map[string]int)}
	if k < 1 {
		return t
	}

	for i := 0; i+k <= len(stream); i++ {
		key := stream[i]
		if k > 1 {
			key = strings.Join(stream[i:i+k], " ")
		}
		if _, seen := t.counts[key]; !seen {
			t.order = append(t.order, key)
		}
		t.counts[key]++
		t.windows++
	}

	return t
}

// Windows returns the total number of windows counted. For a stream of
// length n this is max(n-k+1, 0).
func (t *Table) Windows() int { return t.windows }

// Unique returns the number of distinct keys.
func (t *Table) Unique() int { return len(t.counts) }

// Count returns the occurrence count for a key.
func (t *Table) Count(key string) int { return t.counts[key] }

// Entry is a ranked k-gram with its occurrence count.
type Entry struct {
	Gram  string
	Count int
}

// Ranked returns entries sorted by descending count; equal counts keep
// first-seen order (stable sort over insertion order). Entries with a count
// below minCount are excluded from the list but still contribute to
// Windows and Unique.
func (t *Table) Ranked(minCount int) []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, key := range t.order {
		if c := t.counts[key]; c >= minCount {
			entries = append(entries, Entry{Gram: key, Count: c})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}
