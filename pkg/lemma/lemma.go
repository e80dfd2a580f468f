// Package lemma is the analysis facade: it sequences tokenization,
// morphological resolution, function-word filtering and n-gram aggregation
// into a single Analyze operation.
package lemma

import (
	"fmt"
	"strings"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/internalerr"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/langdetect"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/morph"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/ngram"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/pos"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/textprep"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/tokenize"
)

// multiwordMinCount suppresses singleton bigrams and trigrams from the
// displayed lists. They still count toward totals and uniqueness.
const multiwordMinCount = 2

// Service runs the analysis pipeline. The detector and resolver are shared
// process-wide state; everything else lives within one Analyze call.
type Service struct {
	detector  langdetect.Detector
	resolver  *morph.Resolver
	stripHTML bool
}

// Options configures a Service instance.
type Options struct {
	// Detector resolves the language tag for a request.
	Detector langdetect.Detector
	// Resolver is the shared morphological resolver.
	Resolver *morph.Resolver
	// StripHTML extracts visible text from markup before tokenization.
	StripHTML bool
}

// New creates a Service with the given dependencies.
func New(opts Options) *Service {
	return &Service{
		detector:  opts.Detector,
		resolver:  opts.Resolver,
		stripHTML: opts.StripHTML,
	}
}

// Item is a lemma with its occurrence count.
type Item struct {
	Lemma string `json:"lemma"`
	Count int    `json:"count"`
}

// BigramItem is a ranked bigram with its occurrence count.
type BigramItem struct {
	Bigram string `json:"bigram"`
	Count  int    `json:"count"`
}

// TrigramItem is a ranked trigram with its occurrence count.
type TrigramItem struct {
	Trigram string `json:"trigram"`
	Count   int    `json:"count"`
}

// UnigramStats groups unigram statistics over one lemma stream.
type UnigramStats struct {
	TotalTokens  int    `json:"total_tokens"`
	UniqueLemmas int    `json:"unique_lemmas"`
	Items        []Item `json:"items"`
}

// Result is the full analysis result for one request.
//
// Items reflects the raw lemma stream (all resolvable words);
// ItemsFiltered reflects the content stream with function words removed.
// Bigram/trigram totals derive from the content stream length, and the
// displayed lists exclude singletons.
type Result struct {
	Language       langdetect.Tag `json:"language"`
	TotalTokens    int            `json:"total_tokens"`
	UniqueLemmas   int            `json:"unique_lemmas"`
	Items          []Item         `json:"items"`
	ItemsFiltered  UnigramStats   `json:"items_filtered"`
	TotalBigrams   int            `json:"total_bigrams"`
	UniqueBigrams  int            `json:"unique_bigrams"`
	Bigrams        []BigramItem   `json:"bigrams"`
	TotalTrigrams  int            `json:"total_trigrams"`
	UniqueTrigrams int            `json:"unique_trigrams"`
	Trigrams       []TrigramItem  `json:"trigrams"`
}

// Analyze runs the full pipeline over one text. The steps are synchronous
// and CPU-bound; the only persistent effect is resolver cache state, which
// never changes the output (identical text always yields an identical
// result).
//
// Blank input returns internalerr.ErrInvalidInput; an unconstructible
// engine returns internalerr.ErrEngineUnavailable. Tokens without a
// morphological reading are skipped and contribute to no stream or count.
func (s *Service) Analyze(text string) (Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{}, fmt.Errorf("text is empty: %w", internalerr.ErrInvalidInput)
	}
	if s.stripHTML {
		trimmed = textprep.StripHTML(trimmed)
	}

	lang := s.detector.Detect(trimmed)
	tokens := tokenize.Tokenize(trimmed)

	// One pass over the tokens accumulates both streams. Order is
	// preserved: n-gram adjacency depends on it.
	raw := make([]string, 0, len(tokens))
	content := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		res, err := s.resolver.Resolve(tok)
		if err != nil {
			return Result{}, err
		}
		if !res.OK {
			continue
		}
		raw = append(raw, res.Lemma)
		if !pos.IsFunctionWord(res.Category) {
			content = append(content, res.Lemma)
		}
	}

	// Unigram statistics cover all words; multi-word statistics cover
	// content words only.
	unigrams := ngram.Aggregate(raw, 1)
	unigramsFiltered := ngram.Aggregate(content, 1)
	bigrams := ngram.Aggregate(content, 2)
	trigrams := ngram.Aggregate(content, 3)

	return Result{
		Language:     lang,
		TotalTokens:  unigrams.Windows(),
		UniqueLemmas: unigrams.Unique(),
		Items:        toItems(unigrams.Ranked(1)),
		ItemsFiltered: UnigramStats{
			TotalTokens:  unigramsFiltered.Windows(),
			UniqueLemmas: unigramsFiltered.Unique(),
			Items:        toItems(unigramsFiltered.Ranked(1)),
		},
		TotalBigrams:   bigrams.Windows(),
		UniqueBigrams:  bigrams.Unique(),
		Bigrams:        toBigrams(bigrams.Ranked(multiwordMinCount)),
		TotalTrigrams:  trigrams.Windows(),
		UniqueTrigrams: trigrams.Unique(),
		Trigrams:       toTrigrams(trigrams.Ranked(multiwordMinCount)),
	}, nil
}

func toItems(entries []ngram.Entry) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Lemma: e.Gram, Count: e.Count}
	}
	return items
}

func toBigrams(entries []ngram.Entry) []BigramItem {
	items := make([]BigramItem, len(entries))
	for i, e := range entries {
		items[i] = BigramItem{Bigram: e.Gram, Count: e.Count}
	}
	return items
}

func toTrigrams(entries []ngram.Entry) []TrigramItem {
	items := make([]TrigramItem, len(entries))
	for i, e := range entries {
		items[i] = TrigramItem{Trigram: e.Gram, Count: e.Count}
	}
	return items
}
