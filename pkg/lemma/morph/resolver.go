package morph

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/pos"
)

// DefaultCacheCapacity bounds the shared resolution cache.
const DefaultCacheCapacity = 20000

// Resolution is a cached analyzer result for one word form. OK is false
// when the analyzer had no reading; negative results are cached too, so a
// miss costs exactly one analyzer invocation either way.
type Resolution struct {
	Lemma    string
	Category pos.Category
	OK       bool
}

// Resolver memoizes analyzer lookups in a bounded LRU cache shared across
// requests for the life of the process. The cache is internally
// synchronized, so concurrent reads and inserts are safe; two requests
// racing on the same missing key may both invoke the analyzer, which is a
// benign double-compute — both insert the same value and capacity is never
// exceeded.
type Resolver struct {
	provider *Provider
	cache    *lru.Cache[string, Resolution]
}

// NewResolver creates a resolver over the shared provider. A non-positive
// capacity falls back to DefaultCacheCapacity.
func NewResolver(p *Provider, capacity int) (*Resolver, error) {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	cache, err := lru.New[string, Resolution](capacity)
	if err != nil {
		return nil, err
	}
	return &Resolver{provider: p, cache: cache}, nil
}

// Resolve returns the lemma and category for a lowercased token. A hit
// marks the entry recently used; a miss invokes the analyzer once, takes
// its top-ranked parse and inserts the result, evicting the
// least-recently-used entry when full. The only error is engine
// unavailability.
func (r *Resolver) Resolve(token string) (Resolution, error) {
	if res, ok := r.cache.Get(token); ok {
		return res, nil
	}

	a, err := r.provider.Get()
	if err != nil {
		return Resolution{}, err
	}

	var res Resolution
	if parses := a.Parses(token); len(parses) > 0 {
		top := parses[0] // most confident reading
		res = Resolution{Lemma: top.NormalForm, Category: top.Category, OK: true}
	}
	r.cache.Add(token, res)
	return res, nil
}

// Len reports the current number of cached resolutions.
func (r *Resolver) Len() int { return r.cache.Len() }
