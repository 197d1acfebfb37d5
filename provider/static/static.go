package static

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/poiesic/placesearch/core"
	"github.com/poiesic/placesearch/provider"
)

// Searcher is an in-memory provider over a fixed place set. It exists for
// demos and integration tests; matching is case-insensitive substring
// search over name, address and category, with name matches ranked first.
type Searcher struct {
	places []core.Place
}

var _ provider.BiasedSearcher = (*Searcher)(nil)

// NewSearcher creates a static searcher over the given places.
// Places without an Id get a content-derived one.
func NewSearcher(places []core.Place) *Searcher {
	owned := make([]core.Place, len(places))
	copy(owned, places)
	for i := range owned {
		if owned[i].Id == 0 {
			owned[i].Id = core.IDFromContent(owned[i].Label())
		}
	}
	return &Searcher{places: owned}
}

type scored struct {
	place core.Place
	rank  int
	dist  float64
}

// Search resolves query text against the fixed place set.
func (s *Searcher) Search(ctx context.Context, query string) ([]core.Place, error) {
	return s.search(ctx, query, nil)
}

// SearchBiased resolves query text, preferring places inside the bias
// region and ordering them by distance from its center.
func (s *Searcher) SearchBiased(ctx context.Context, query string, bias core.Region) ([]core.Place, error) {
	return s.search(ctx, query, &bias)
}

func (s *Searcher) search(ctx context.Context, query string, bias *core.Region) ([]core.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := core.NormalizeQuery(query)
	if q == "" {
		return nil, provider.BadQuery("empty query")
	}

	var matches []scored
	for _, p := range s.places {
		rank, ok := matchRank(p, q)
		if !ok {
			continue
		}
		m := scored{place: p, rank: rank}
		if bias != nil {
			m.dist = haversineMeters(bias.Center, p.Coord)
			if m.dist > bias.RadiusMeters {
				// Outside the region: keep as a fallback with a rank penalty.
				m.rank += 10
			}
		}
		matches = append(matches, m)
	}

	if len(matches) == 0 {
		return nil, provider.NoResults()
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		if bias != nil && matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].place.Name < matches[j].place.Name
	})

	results := make([]core.Place, len(matches))
	for i, m := range matches {
		results[i] = m.place
	}
	return results, nil
}

// matchRank returns the match quality for a place: 0 for a name prefix,
// 1 for a name substring, 2 for an address or category substring.
func matchRank(p core.Place, q string) (int, bool) {
	name := strings.ToLower(p.Name)
	switch {
	case strings.HasPrefix(name, q):
		return 0, true
	case strings.Contains(name, q):
		return 1, true
	case strings.Contains(strings.ToLower(p.Address), q),
		strings.Contains(strings.ToLower(p.Category), q):
		return 2, true
	}
	return 0, false
}

const earthRadiusMeters = 6371000

// haversineMeters returns the great-circle distance between two points.
func haversineMeters(a, b core.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
