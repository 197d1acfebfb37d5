package recent

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/placesearch/core"
	"github.com/poiesic/placesearch/storage"
)

const (
	defaultMaxEntries = 10

	// DefaultStorageKey is the blob key recent selections persist under.
	DefaultStorageKey = "recent-selections"
)

// Store keeps a bounded, most-recent-first list of user-selected places
// and persists it across sessions. The in-memory list is authoritative;
// persistence writes are asynchronous and best-effort, so a failed write
// never surfaces to the caller.
type Store struct {
	mu     sync.Mutex
	places []core.Place

	maxEntries int
	key        string
	blobs      storage.BlobStore
	pool       *ants.Pool
	pending    sync.WaitGroup
	logger     *slog.Logger
}

// Option configures a Store.
type Option func(*Store) error

// WithMaxEntries sets the maximum number of remembered selections.
// Default is 10. Values below 1 are clamped to 1.
func WithMaxEntries(n int) Option {
	return func(s *Store) error {
		if n < 1 {
			n = 1
		}
		s.maxEntries = n
		return nil
	}
}

// WithStorageKey sets the blob key the list persists under.
// Default is DefaultStorageKey.
func WithStorageKey(key string) Option {
	return func(s *Store) error {
		if key == "" {
			return ErrEmptyStorageKey
		}
		s.key = key
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStore creates a recent-selection store backed by blobs and loads any
// previously persisted list. A missing or undecodable blob yields an empty
// list; decode problems are logged, never returned.
func NewStore(blobs storage.BlobStore, opts ...Option) (*Store, error) {
	if blobs == nil {
		return nil, ErrBlobStoreRequired
	}

	// Persistence writes are serialized through a single worker so later
	// snapshots cannot be overwritten by earlier ones.
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	s := &Store{
		maxEntries: defaultMaxEntries,
		key:        DefaultStorageKey,
		blobs:      blobs,
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(s); optErr != nil {
			pool.Release()
			return nil, optErr
		}
	}

	s.places = s.loadPersisted()
	return s, nil
}

// loadPersisted reads the persisted list, degrading to empty on any failure.
func (s *Store) loadPersisted() []core.Place {
	data, err := s.blobs.Load(context.Background(), s.key)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.Warn("failed to load recent selections", "key", s.key, "err", err)
		}
		return nil
	}

	places, err := storage.UnmarshalPlaces(data)
	if err != nil {
		s.logger.Warn("discarding undecodable recent selections", "key", s.key, "err", err)
		return nil
	}

	if len(places) > s.maxEntries {
		places = places[:s.maxEntries]
	}
	return places
}

// Add records a selection at the front of the list. Re-selecting a place
// already in the list promotes it instead of duplicating it; the tail is
// dropped once the list exceeds its bound. Persistence happens on a
// background worker and does not block.
func (s *Store) Add(place core.Place) {
	s.mu.Lock()

	kept := s.places[:0:len(s.places)]
	for _, p := range s.places {
		if p.Id != place.Id {
			kept = append(kept, p)
		}
	}
	s.places = append([]core.Place{place}, kept...)
	if len(s.places) > s.maxEntries {
		s.places = s.places[:s.maxEntries]
	}

	snapshot := make([]core.Place, len(s.places))
	copy(snapshot, s.places)
	s.mu.Unlock()

	s.persistAsync(snapshot)
}

// All returns the remembered selections, most recent first.
func (s *Store) All() []core.Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Place, len(s.places))
	copy(out, s.places)
	return out
}

// Clear empties the list and removes the persisted blob.
func (s *Store) Clear() {
	s.mu.Lock()
	s.places = nil
	s.mu.Unlock()

	s.pending.Add(1)
	err := s.pool.Submit(func() {
		defer s.pending.Done()
		if err := s.blobs.Delete(context.Background(), s.key); err != nil {
			s.logger.Warn("failed to clear persisted recent selections", "key", s.key, "err", err)
		}
	})
	if err != nil {
		s.pending.Done()
		s.logger.Warn("failed to schedule recent-selections clear", "err", err)
	}
}

func (s *Store) persistAsync(snapshot []core.Place) {
	s.pending.Add(1)
	err := s.pool.Submit(func() {
		defer s.pending.Done()
		data := storage.MarshalPlaces(snapshot)
		if err := s.blobs.Save(context.Background(), s.key, data); err != nil {
			s.logger.Warn("failed to persist recent selections", "key", s.key, "err", err)
		}
	})
	if err != nil {
		// Pool released or saturated; in-memory state stays authoritative.
		s.pending.Done()
		s.logger.Warn("failed to schedule recent-selections write", "err", err)
	}
}

// Flush blocks until all scheduled persistence writes have completed.
func (s *Store) Flush() {
	s.pending.Wait()
}

// Release flushes pending writes and frees the worker pool.
// The store should not be used after calling Release.
func (s *Store) Release() {
	s.pending.Wait()
	s.pool.Release()
}
