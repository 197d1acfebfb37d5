package provider

import (
	"context"

	"github.com/poiesic/placesearch/core"
)

// BasicSearcher performs a plain location search.
// Implementations must be thread-safe for concurrent use.
type BasicSearcher interface {
	// Search resolves query text to a ranked list of places.
	// An empty result is a valid outcome; providers that distinguish
	// "nothing matched" as a failure return a SearchError of KindNoResults.
	// Implementations must honor ctx cancellation.
	Search(ctx context.Context, query string) ([]core.Place, error)
}

// BiasedSearcher is a BasicSearcher that can additionally bias results
// toward a geographic region.
type BiasedSearcher interface {
	BasicSearcher

	// SearchBiased resolves query text with a region hint. The bias is
	// advisory: providers prefer results near the region but may return
	// results outside it.
	SearchBiased(ctx context.Context, query string, bias core.Region) ([]core.Place, error)
}
