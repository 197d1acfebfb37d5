package query

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/placesearch/cache"
	"github.com/poiesic/placesearch/core"
	"github.com/poiesic/placesearch/provider"
	"github.com/poiesic/placesearch/recent"
)

const defaultDebounce = 250 * time.Millisecond

// Coordinator turns raw keystrokes into throttled, cancellable provider
// calls and maintains the observable query state. One coordinator serves
// one UI surface.
type Coordinator struct {
	searcher provider.BasicSearcher
	cache    *cache.Cache
	recents  *recent.Store
	debounce time.Duration
	logger   *slog.Logger
	monitor  Monitor

	mu    sync.Mutex
	state State
	timer *time.Timer

	// fireSeq invalidates pending debounce fires; taskSeq invalidates
	// in-flight provider calls. Both only grow.
	fireSeq uint64
	taskSeq uint64
	cancel  context.CancelFunc

	notifyMu  sync.Mutex
	listeners []func(State)

	suggestions []string
}

// Option configures a Coordinator.
type Option func(*Coordinator) error

// WithDebounce sets the debounce delay applied to keystrokes.
// Default is 250ms; zero means fire on the next timer tick. Shorter
// delays trade provider call volume for responsiveness.
func WithDebounce(d time.Duration) Option {
	return func(c *Coordinator) error {
		if d < 0 {
			return ErrInvalidDebounce
		}
		c.debounce = d
		return nil
	}
}

// WithCache sets the result cache.
// Default is a cache with default bounds.
func WithCache(rc *cache.Cache) Option {
	return func(c *Coordinator) error {
		if rc != nil {
			c.cache = rc
		}
		return nil
	}
}

// WithRecents sets the recent-selection store.
// Without one, selections are not remembered across sessions.
func WithRecents(store *recent.Store) Option {
	return func(c *Coordinator) error {
		c.recents = store
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithMonitor sets a lifecycle monitor. Hooks run on coordinator
// goroutines, so implementations should return quickly.
func WithMonitor(m Monitor) Option {
	return func(c *Coordinator) error {
		if m == nil {
			return ErrMonitorRequired
		}
		c.monitor = m
		return nil
	}
}

// WithSuggestions sets the fixed list backing quick text suggestions.
// Default is a small set of common location searches.
func WithSuggestions(list []string) Option {
	return func(c *Coordinator) error {
		c.suggestions = append([]string(nil), list...)
		return nil
	}
}

// NewCoordinator creates a coordinator for the given provider.
func NewCoordinator(searcher provider.BasicSearcher, opts ...Option) (*Coordinator, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	c := &Coordinator{
		searcher:    searcher,
		debounce:    defaultDebounce,
		logger:      slog.Default(),
		monitor:     &noopMonitor{},
		suggestions: defaultSuggestions,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.cache == nil {
		rc, err := cache.New()
		if err != nil {
			return nil, err
		}
		c.cache = rc
	}

	if c.recents != nil {
		c.state.Recents = c.recents.All()
	}

	return c, nil
}

// Subscribe registers a listener for state changes. Listeners receive
// snapshots sequentially; a slow listener delays later notifications.
func (c *Coordinator) Subscribe(fn func(State)) {
	if fn == nil {
		return
	}
	c.notifyMu.Lock()
	c.listeners = append(c.listeners, fn)
	c.notifyMu.Unlock()
}

// State returns a snapshot of the current observable state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SetQueryText updates the raw text immediately and arms the debounce
// timer. Empty text transitions straight to Idle: results, error,
// loading and selection clear atomically and any in-flight call is
// cancelled.
func (c *Coordinator) SetQueryText(text string) {
	c.mu.Lock()

	c.state.Text = text
	c.fireSeq++
	c.stopTimerLocked()

	if core.NormalizeQuery(text) == "" {
		c.cancelInFlightLocked()
		c.state.Results = nil
		c.state.Err = ""
		c.state.Loading = false
		c.state.Selected = nil
		c.refreshRecentsLocked()
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return
	}

	// A keystroke during Searching supersedes the in-flight call before
	// the new debounce window even starts.
	c.cancelInFlightLocked()

	seq := c.fireSeq
	c.timer = time.AfterFunc(c.debounce, func() {
		c.fire(seq, nil)
	})

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Search triggers an immediate search of the current text, skipping any
// pending debounce wait.
func (c *Coordinator) Search() {
	c.trigger(nil)
}

// SearchWithRegion triggers an immediate search of the current text with
// a geographic bias. Providers that lack the biased capability get the
// plain call; the check happens on every trigger.
func (c *Coordinator) SearchWithRegion(region core.Region) {
	c.trigger(&region)
}

func (c *Coordinator) trigger(bias *core.Region) {
	c.mu.Lock()
	c.fireSeq++
	seq := c.fireSeq
	c.stopTimerLocked()
	c.mu.Unlock()

	c.fire(seq, bias)
}

// fire runs when a debounce window closes. A stale seq means the
// coordinator has moved on and the fire is a no-op.
func (c *Coordinator) fire(seq uint64, bias *core.Region) {
	c.mu.Lock()

	if seq != c.fireSeq {
		c.mu.Unlock()
		return
	}

	q := core.NormalizeQuery(c.state.Text)
	if q == "" {
		c.mu.Unlock()
		return
	}

	// Synchronous cache fast path: show cached results immediately, no
	// loading flag. The provider call still goes out to refresh them.
	cached, hit := c.cache.Get(q)
	if hit {
		c.state.Results = cached
	}
	c.state.Err = ""
	c.state.Loading = !hit

	c.cancelInFlightLocked()
	c.taskSeq++
	task := c.taskSeq
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.monitor.SearchStarted(q)
	if hit {
		c.monitor.CacheHit(q, cached)
	}
	c.notify(snap)

	c.monitor.ProviderCalled(q, bias != nil)
	go c.run(ctx, task, q, bias)
}

// run executes one provider call and commits its outcome unless the
// task was superseded meanwhile.
func (c *Coordinator) run(ctx context.Context, task uint64, q string, bias *core.Region) {
	results, err := c.callProvider(ctx, q, bias)

	c.mu.Lock()

	// Superseded or cancelled tasks discard their outcome silently: no
	// cache write, no state commit, no flags.
	if task != c.taskSeq || ctx.Err() != nil {
		c.mu.Unlock()
		c.monitor.Superseded(q)
		return
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.mu.Unlock()
			c.monitor.Superseded(q)
			return
		}

		c.state.Loading = false
		if !c.state.HasResults() {
			c.state.Err = messageFor(err)
		} else {
			// Stale-but-present results win over an error banner.
			c.logger.Debug("suppressing search failure behind cached results",
				"query", q, "kind", provider.KindOf(err), "err", err)
		}

		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.monitor.SearchFailed(q, err)
		c.notify(snap)
		return
	}

	c.cache.Put(q, results)
	c.state.Results = results
	c.state.Err = ""
	c.state.Loading = false

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.monitor.SearchFinished(q, results)
	c.notify(snap)
}

func (c *Coordinator) callProvider(ctx context.Context, q string, bias *core.Region) ([]core.Place, error) {
	if bias != nil {
		if biased, ok := c.searcher.(provider.BiasedSearcher); ok {
			return biased.SearchBiased(ctx, q, *bias)
		}
	}
	return c.searcher.Search(ctx, q)
}

// SelectResult records the active selection, leaves any search mode, and
// forwards the place to the recent-selection store.
func (c *Coordinator) SelectResult(place core.Place) {
	if c.recents != nil {
		c.recents.Add(place)
	}

	c.mu.Lock()
	c.fireSeq++
	c.stopTimerLocked()
	c.cancelInFlightLocked()
	c.state.Loading = false
	c.state.Err = ""
	selected := place
	c.state.Selected = &selected
	c.refreshRecentsLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Cancel aborts any in-flight work, clears the text and forces Idle.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	c.fireSeq++
	c.stopTimerLocked()
	c.cancelInFlightLocked()
	c.state.Text = ""
	c.state.Results = nil
	c.state.Err = ""
	c.state.Loading = false
	c.state.Selected = nil
	c.refreshRecentsLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// ShowRecentWhenEmpty populates the display with the recent-selections
// list when the text is empty. A read-only convenience path: no cache
// lookup, no provider call.
func (c *Coordinator) ShowRecentWhenEmpty() {
	c.mu.Lock()
	if !c.state.IsSearchEmpty() {
		c.mu.Unlock()
		return
	}
	c.refreshRecentsLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Close stops the debounce timer and cancels in-flight work. The
// coordinator should not be used after calling Close.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.fireSeq++
	c.stopTimerLocked()
	c.cancelInFlightLocked()
	c.mu.Unlock()
}

func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Coordinator) cancelInFlightLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.taskSeq++
}

func (c *Coordinator) refreshRecentsLocked() {
	if c.recents != nil {
		c.state.Recents = c.recents.All()
	}
}

func (c *Coordinator) snapshotLocked() State {
	snap := c.state
	snap.Results = append([]core.Place(nil), c.state.Results...)
	snap.Recents = append([]core.Place(nil), c.state.Recents...)
	if c.state.Selected != nil {
		selected := *c.state.Selected
		snap.Selected = &selected
	}
	return snap
}

func (c *Coordinator) notify(snap State) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	for _, fn := range c.listeners {
		fn(snap)
	}
}

// messageFor maps a provider failure onto the user-facing message shown
// in place of the result list.
func messageFor(err error) string {
	switch provider.KindOf(err) {
	case provider.KindTransport:
		return "Search is unavailable. Check your connection and try again."
	case provider.KindNoResults:
		return "No places found."
	case provider.KindBadQuery:
		return "Couldn't understand that search."
	default:
		return "Search failed. Try again."
	}
}
