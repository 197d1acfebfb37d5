package static

import (
	"context"
	"testing"

	"github.com/poiesic/placesearch/core"
	"github.com/poiesic/placesearch/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlaces() []core.Place {
	return []core.Place{
		{Name: "Coffee Shop", Address: "1 Main St", Category: "cafe", Coord: core.Coordinates{Lat: 47.60, Lon: -122.33}},
		{Name: "Corner Coffee", Address: "9 Pike St", Category: "cafe", Coord: core.Coordinates{Lat: 47.61, Lon: -122.34}},
		{Name: "Pier 57", Address: "Alaskan Way", Category: "landmark", Coord: core.Coordinates{Lat: 47.6057, Lon: -122.3427}},
		{Name: "Harbor Cafe", Address: "2 Dock Rd", Category: "coffee", Coord: core.Coordinates{Lat: 51.50, Lon: -0.12}},
	}
}

func TestSearcher_Search(t *testing.T) {
	s := NewSearcher(testPlaces())
	ctx := context.Background()

	t.Run("name prefix ranks first", func(t *testing.T) {
		results, err := s.Search(ctx, "coffee")
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "Coffee Shop", results[0].Name)
	})

	t.Run("matches address and category", func(t *testing.T) {
		results, err := s.Search(ctx, "alaskan")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Pier 57", results[0].Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		results, err := s.Search(ctx, "PIER")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("no matches", func(t *testing.T) {
		_, err := s.Search(ctx, "zzzz")
		assert.Equal(t, provider.KindNoResults, provider.KindOf(err))
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := s.Search(ctx, "  ")
		assert.Equal(t, provider.KindBadQuery, provider.KindOf(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.Search(cancelled, "coffee")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSearcher_SearchBiased(t *testing.T) {
	s := NewSearcher(testPlaces())
	ctx := context.Background()

	seattle := core.Region{
		Center:       core.Coordinates{Lat: 47.6062, Lon: -122.3321},
		RadiusMeters: 5000,
	}

	results, err := s.SearchBiased(ctx, "coffee", seattle)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Harbor Cafe is in London, far outside the bias region; it ranks last
	// even though its category matches.
	assert.Equal(t, "Harbor Cafe", results[2].Name)
}

func TestNewSearcher_AssignsIDs(t *testing.T) {
	s := NewSearcher([]core.Place{{Name: "No ID", Coord: core.Coordinates{}}})
	results, err := s.Search(context.Background(), "no id")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotZero(t, results[0].Id)
}
