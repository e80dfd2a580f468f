package morph

import (
	"errors"
	"sync"
	"testing"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/internalerr"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/pos"
)

// countingAnalyzer records how many times each word was analyzed.
type countingAnalyzer struct {
	mu     sync.Mutex
	calls  map[string]int
	parses map[string][]Parse
}

func newCountingAnalyzer(parses map[string][]Parse) *countingAnalyzer {
	return &countingAnalyzer{calls: make(map[string]int), parses: parses}
}

func (a *countingAnalyzer) Parses(word string) []Parse {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls[word]++
	return a.parses[word]
}

func (a *countingAnalyzer) callCount(word string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[word]
}

func staticProvider(a Analyzer) *Provider {
	return NewProvider(func() (Analyzer, error) { return a, nil })
}

func TestResolverCachesHits(t *testing.T) {
	analyzer := newCountingAnalyzer(map[string][]Parse{
		"кота": {{NormalForm: "кот", Category: pos.Noun}},
	})
	resolver, err := NewResolver(staticProvider(analyzer), 10)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		res, err := resolver.Resolve("кота")
		if err != nil {
			t.Fatal(err)
		}
		if !res.OK || res.Lemma != "кот" {
			t.Errorf("Expected кот, got %+v", res)
		}
	}

	// A miss invokes the analyzer exactly once; hits never do
	if got := analyzer.callCount("кота"); got != 1 {
		t.Errorf("Expected 1 analyzer call, got %d", got)
	}
}

func TestResolverCachesNegativeResults(t *testing.T) {
	analyzer := newCountingAnalyzer(nil)
	resolver, err := NewResolver(staticProvider(analyzer), 10)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		res, err := resolver.Resolve("абракадабра")
		if err != nil {
			t.Fatal(err)
		}
		if res.OK {
			t.Errorf("Expected no reading, got %+v", res)
		}
	}

	if got := analyzer.callCount("абракадабра"); got != 1 {
		t.Errorf("No-parse results must be cached too, got %d calls", got)
	}
}

func TestResolverTakesTopParse(t *testing.T) {
	analyzer := newCountingAnalyzer(map[string][]Parse{
		"мыла": {
			{NormalForm: "мыть", Category: pos.Verb},
			{NormalForm: "мыло", Category: pos.Noun},
		},
	})
	resolver, err := NewResolver(staticProvider(analyzer), 10)
	if err != nil {
		t.Fatal(err)
	}

	res, err := resolver.Resolve("мыла")
	if err != nil {
		t.Fatal(err)
	}
	if res.Lemma != "мыть" || res.Category != pos.Verb {
		t.Errorf("Expected top-ranked parse мыть/VERB, got %+v", res)
	}
}

func TestResolverEvictsLRU(t *testing.T) {
	analyzer := newCountingAnalyzer(map[string][]Parse{
		"а": {{NormalForm: "а", Category: pos.Conjunction}},
		"б": {{NormalForm: "б", Category: pos.Unknown}},
		"в": {{NormalForm: "в", Category: pos.Preposition}},
	})
	resolver, err := NewResolver(staticProvider(analyzer), 2)
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range []string{"а", "б", "в"} {
		if _, err := resolver.Resolve(w); err != nil {
			t.Fatal(err)
		}
	}

	if resolver.Len() > 2 {
		t.Errorf("Cache size %d exceeds capacity 2", resolver.Len())
	}

	// "а" was least recently used and evicted, so it costs another call
	if _, err := resolver.Resolve("а"); err != nil {
		t.Fatal(err)
	}
	if got := analyzer.callCount("а"); got != 2 {
		t.Errorf("Expected re-analysis after eviction, got %d calls", got)
	}
}

func TestResolverConcurrentUse(t *testing.T) {
	analyzer := newCountingAnalyzer(map[string][]Parse{
		"кот":  {{NormalForm: "кот", Category: pos.Noun}},
		"дом":  {{NormalForm: "дом", Category: pos.Noun}},
		"окно": {{NormalForm: "окно", Category: pos.Noun}},
	})
	resolver, err := NewResolver(staticProvider(analyzer), 2)
	if err != nil {
		t.Fatal(err)
	}

	words := []string{"кот", "дом", "окно"}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				word := words[(i+j)%len(words)]
				res, err := resolver.Resolve(word)
				if err != nil {
					t.Errorf("Resolve(%q): %v", word, err)
					return
				}
				if !res.OK || res.Lemma != word {
					t.Errorf("Resolve(%q) = %+v", word, res)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	// Capacity holds even under racing inserts
	if resolver.Len() > 2 {
		t.Errorf("Cache size %d exceeds capacity 2", resolver.Len())
	}
}

func TestProviderRetriesFailedConstruction(t *testing.T) {
	attempts := 0
	provider := NewProvider(func() (Analyzer, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("dictionary file missing")
		}
		return NewDictionary([]Entry{
			{Form: "кот", Parse: Parse{NormalForm: "кот", Category: pos.Noun}},
		}), nil
	})

	if _, err := provider.Get(); !errors.Is(err, internalerr.ErrEngineUnavailable) {
		t.Fatalf("Expected ErrEngineUnavailable, got %v", err)
	}

	// Failure is not cached: the next demand retries construction
	a, err := provider.Get()
	if err != nil {
		t.Fatalf("Second Get should succeed, got %v", err)
	}
	if len(a.Parses("кот")) != 1 {
		t.Error("Constructed analyzer should resolve кот")
	}

	// A successful construction is reused, not repeated
	if _, err := provider.Get(); err != nil {
		t.Fatal(err)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 construction attempts, got %d", attempts)
	}
}
