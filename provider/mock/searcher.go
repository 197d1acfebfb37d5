package mock

import (
	"context"
	"sync"

	"github.com/poiesic/placesearch/core"
	"github.com/poiesic/placesearch/provider"
)

// Searcher is a test double for provider.BasicSearcher.
// It allows custom behavior injection via function fields.
type Searcher struct {
	// SearchFunc is called by Search if set.
	// If nil, uses default deterministic behavior.
	SearchFunc func(ctx context.Context, query string) ([]core.Place, error)

	mu        sync.Mutex
	callCount int
	queries   []string
}

var _ provider.BasicSearcher = (*Searcher)(nil)

// NewSearcher creates a mock searcher with default deterministic behavior.
// Note: Returns concrete type to allow test assertions on call counts.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Search returns a single deterministic place derived from the query,
// or delegates to SearchFunc when set.
func (m *Searcher) Search(ctx context.Context, query string) ([]core.Place, error) {
	m.mu.Lock()
	m.callCount++
	m.queries = append(m.queries, query)
	fn := m.SearchFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, query)
	}

	return []core.Place{cannedPlace(query)}, nil
}

// CallCount returns the number of times Search was called.
func (m *Searcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Queries returns the queries Search has seen, in call order.
func (m *Searcher) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.queries))
	copy(out, m.queries)
	return out
}

// Reset clears call state and injected behavior.
func (m *Searcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.queries = nil
	m.SearchFunc = nil
}

// BiasedSearcher is a test double for provider.BiasedSearcher.
type BiasedSearcher struct {
	Searcher

	// SearchBiasedFunc is called by SearchBiased if set.
	// If nil, uses default deterministic behavior.
	SearchBiasedFunc func(ctx context.Context, query string, bias core.Region) ([]core.Place, error)

	mu              sync.Mutex
	biasedCallCount int
	lastBias        core.Region
}

var _ provider.BiasedSearcher = (*BiasedSearcher)(nil)

// NewBiasedSearcher creates a mock biased searcher with default
// deterministic behavior.
func NewBiasedSearcher() *BiasedSearcher {
	return &BiasedSearcher{}
}

// SearchBiased records the bias region and returns a deterministic place,
// or delegates to SearchBiasedFunc when set.
func (m *BiasedSearcher) SearchBiased(ctx context.Context, query string, bias core.Region) ([]core.Place, error) {
	m.mu.Lock()
	m.biasedCallCount++
	m.lastBias = bias
	fn := m.SearchBiasedFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, query, bias)
	}

	return []core.Place{cannedPlace(query)}, nil
}

// BiasedCallCount returns the number of times SearchBiased was called.
func (m *BiasedSearcher) BiasedCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.biasedCallCount
}

// LastBias returns the bias region from the most recent SearchBiased call.
func (m *BiasedSearcher) LastBias() core.Region {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastBias
}

// cannedPlace builds a deterministic place for a query so that the same
// query always produces the same result.
func cannedPlace(query string) core.Place {
	return core.Place{
		Id:       core.IDFromContent(query),
		Name:     query,
		Category: "mock",
		Coord:    core.Coordinates{Lat: 0, Lon: 0},
	}
}
