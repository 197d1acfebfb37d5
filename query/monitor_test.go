package query

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/poiesic/placesearch/core"
	"github.com/poiesic/placesearch/provider"
	"github.com/poiesic/placesearch/provider/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMonitor struct {
	mu            sync.Mutex
	started       []string
	cacheHits     []string
	providerCalls []string
	failed        []string
	finished      []string
}

func (r *recordingMonitor) SearchStarted(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, q)
}

func (r *recordingMonitor) CacheHit(q string, _ []core.Place) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cacheHits = append(r.cacheHits, q)
}

func (r *recordingMonitor) ProviderCalled(q string, _ bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providerCalls = append(r.providerCalls, q)
}

func (r *recordingMonitor) Superseded(_ string) {}

func (r *recordingMonitor) SearchFailed(q string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, q)
}

func (r *recordingMonitor) SearchFinished(q string, _ []core.Place) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, q)
}

func (r *recordingMonitor) snapshot() (started, cacheHits, providerCalls, failed, finished []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.started...),
		append([]string(nil), r.cacheHits...),
		append([]string(nil), r.providerCalls...),
		append([]string(nil), r.failed...),
		append([]string(nil), r.finished...)
}

func TestWithMonitor_NilRejected(t *testing.T) {
	_, err := NewCoordinator(mock.NewSearcher(), WithMonitor(nil))
	assert.Equal(t, ErrMonitorRequired, err)
}

func TestMonitor_ObservesSearchLifecycle(t *testing.T) {
	m := mock.NewSearcher()
	m.SearchFunc = func(ctx context.Context, q string) ([]core.Place, error) {
		return places("Coffee Shop"), nil
	}

	rec := &recordingMonitor{}
	c, _ := newTestCoordinator(t, m, WithMonitor(rec))
	ch := collect(c)

	c.SetQueryText("coffee")
	waitState(t, ch, "first search settled", func(s State) bool {
		return s.HasResults() && !s.Loading
	})

	started, cacheHits, providerCalls, failed, finished := rec.snapshot()
	assert.Equal(t, []string{"coffee"}, started)
	assert.Empty(t, cacheHits)
	assert.Equal(t, []string{"coffee"}, providerCalls)
	assert.Empty(t, failed)
	assert.Equal(t, []string{"coffee"}, finished)

	// A repeat search hits the cache before the refresh call goes out.
	c.Search()
	waitState(t, ch, "repeat search settled", func(s State) bool {
		return s.HasResults() && !s.Loading
	})

	_, cacheHits, providerCalls, _, _ = rec.snapshot()
	assert.Equal(t, []string{"coffee"}, cacheHits)
	require.Len(t, providerCalls, 2)
}

func TestMonitor_ObservesFailure(t *testing.T) {
	m := mock.NewSearcher()
	m.SearchFunc = func(ctx context.Context, q string) ([]core.Place, error) {
		return nil, provider.Transport(errors.New("down"))
	}

	rec := &recordingMonitor{}
	c, _ := newTestCoordinator(t, m, WithMonitor(rec))
	ch := collect(c)

	c.SetQueryText("pier")
	waitState(t, ch, "failure surfaced", func(s State) bool {
		return s.Err != ""
	})

	_, _, _, failed, finished := rec.snapshot()
	assert.Equal(t, []string{"pier"}, failed)
	assert.Empty(t, finished)
}
