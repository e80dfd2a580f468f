package morph

import (
	"fmt"
	"sync"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/internalerr"
)

// Provider lazily constructs a process-wide Analyzer. The mutex is a
// one-time initialization barrier against concurrent double-construction;
// a construction failure is returned to the caller but never cached, so the
// next demand retries. There is no fallback to a degraded analyzer: when
// the engine cannot be built the request fails.
type Provider struct {
	mu       sync.Mutex
	build    func() (Analyzer, error)
	analyzer Analyzer
}

// NewProvider wraps a construction function. The function runs at most once
// per successful construction; the result is reused for the process
// lifetime.
func NewProvider(build func() (Analyzer, error)) *Provider {
	return &Provider{build: build}
}

// Get returns the shared analyzer, constructing it on first demand.
func (p *Provider) Get() (Analyzer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.analyzer != nil {
		return p.analyzer, nil
	}

	a, err := p.build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrEngineUnavailable, err)
	}
	p.analyzer = a
	return a, nil
}
