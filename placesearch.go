// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package placesearch

import (
	"log/slog"

	"github.com/poiesic/placesearch/cache"
	"github.com/poiesic/placesearch/provider"
	"github.com/poiesic/placesearch/query"
	"github.com/poiesic/placesearch/recent"
	"github.com/poiesic/placesearch/storage"
	"github.com/poiesic/placesearch/storage/badger"
)

// Finder wires a search provider, result cache, recent-selection store
// and query coordinator into one ready-to-use search surface backed by
// an on-disk (or in-memory) database.
type Finder struct {
	backend     *badger.Backend
	blobs       storage.BlobStore
	recents     *recent.Store
	cache       *cache.Cache
	coordinator *query.Coordinator
	logger      *slog.Logger
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

type finderOptions struct {
	inMemory   bool
	cacheOpts  []cache.Option
	recentOpts []recent.Option
	queryOpts  []query.Option
}

// WithInMemory keeps all persisted state in memory; filePath is ignored.
// Intended for tests and ephemeral sessions.
func WithInMemory() FinderOption {
	return func(o *finderOptions) {
		o.inMemory = true
	}
}

// WithCacheOptions forwards options to the result cache.
func WithCacheOptions(opts ...cache.Option) FinderOption {
	return func(o *finderOptions) {
		o.cacheOpts = append(o.cacheOpts, opts...)
	}
}

// WithRecentOptions forwards options to the recent-selection store.
func WithRecentOptions(opts ...recent.Option) FinderOption {
	return func(o *finderOptions) {
		o.recentOpts = append(o.recentOpts, opts...)
	}
}

// WithQueryOptions forwards options to the query coordinator.
func WithQueryOptions(opts ...query.Option) FinderOption {
	return func(o *finderOptions) {
		o.queryOpts = append(o.queryOpts, opts...)
	}
}

// Open creates a Finder over the database at filePath using the given
// search provider.
func Open(filePath string, searcher provider.BasicSearcher, opts ...FinderOption) (*Finder, error) {
	options := &finderOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	blobs, err := badger.NewBlobStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	recents, err := recent.NewStore(blobs, options.recentOpts...)
	if err != nil {
		blobs.Close()
		backend.Close()
		return nil, err
	}

	resultCache, err := cache.New(options.cacheOpts...)
	if err != nil {
		recents.Release()
		blobs.Close()
		backend.Close()
		return nil, err
	}

	queryOpts := append([]query.Option{
		query.WithCache(resultCache),
		query.WithRecents(recents),
	}, options.queryOpts...)

	coordinator, err := query.NewCoordinator(searcher, queryOpts...)
	if err != nil {
		recents.Release()
		blobs.Close()
		backend.Close()
		return nil, err
	}

	return &Finder{
		backend:     backend,
		blobs:       blobs,
		recents:     recents,
		cache:       resultCache,
		coordinator: coordinator,
		logger:      slog.Default(),
	}, nil
}

// Close flushes pending recent-selection writes and closes storage.
func (f *Finder) Close() error {
	f.coordinator.Close()
	f.recents.Release()

	if err := f.blobs.Close(); err != nil {
		f.logger.Error("error closing blob store", "err", err)
		return err
	}
	if err := f.backend.Close(); err != nil {
		f.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Coordinator returns the query coordinator for this surface.
func (f *Finder) Coordinator() *query.Coordinator {
	return f.coordinator
}

// Recents returns the recent-selection store.
func (f *Finder) Recents() *recent.Store {
	return f.recents
}

// Cache returns the result cache.
func (f *Finder) Cache() *cache.Cache {
	return f.cache
}
