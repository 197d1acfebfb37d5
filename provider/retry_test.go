package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/placesearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	calls int
	fn    func(call int) ([]core.Place, error)
}

func (s *stubSearcher) Search(_ context.Context, _ string) ([]core.Place, error) {
	s.calls++
	return s.fn(s.calls)
}

type stubBiasedSearcher struct {
	stubSearcher
	biasedCalls int
	lastBias    core.Region
}

func (s *stubBiasedSearcher) SearchBiased(_ context.Context, _ string, bias core.Region) ([]core.Place, error) {
	s.biasedCalls++
	s.lastBias = bias
	return s.fn(s.biasedCalls)
}

func TestNewRetryingSearcher_Validation(t *testing.T) {
	inner := &stubSearcher{fn: func(int) ([]core.Place, error) { return nil, nil }}

	_, err := NewRetryingSearcher(nil, 3, time.Millisecond)
	assert.ErrorIs(t, err, ErrSearcherRequired)

	_, err = NewRetryingSearcher(inner, 0, time.Millisecond)
	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
}

func TestRetryingSearcher_RetriesTransportFailures(t *testing.T) {
	want := []core.Place{{Id: 1, Name: "Pier 57"}}
	inner := &stubSearcher{fn: func(call int) ([]core.Place, error) {
		if call < 3 {
			return nil, Transport(errors.New("connection reset"))
		}
		return want, nil
	}}

	r, err := NewRetryingSearcher(inner, 3, time.Millisecond)
	require.NoError(t, err)

	got, err := r.Search(context.Background(), "pier")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryingSearcher_ExhaustsAttempts(t *testing.T) {
	inner := &stubSearcher{fn: func(int) ([]core.Place, error) {
		return nil, Transport(errors.New("down"))
	}}

	r, err := NewRetryingSearcher(inner, 3, time.Millisecond)
	require.NoError(t, err)

	_, err = r.Search(context.Background(), "pier")
	assert.Equal(t, KindTransport, KindOf(err))
	assert.Equal(t, 3, inner.calls)
}

func TestRetryingSearcher_DoesNotRetryFinalAnswers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"no results", NoResults(), KindNoResults},
		{"bad query", BadQuery("empty"), KindBadQuery},
		{"unclassified", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &stubSearcher{fn: func(int) ([]core.Place, error) {
				return nil, tt.err
			}}
			r, err := NewRetryingSearcher(inner, 5, time.Millisecond)
			require.NoError(t, err)

			_, err = r.Search(context.Background(), "pier")
			assert.Equal(t, tt.kind, KindOf(err))
			assert.Equal(t, 1, inner.calls)
		})
	}
}

func TestRetryingSearcher_CancelledContext(t *testing.T) {
	inner := &stubSearcher{fn: func(int) ([]core.Place, error) {
		return nil, Transport(errors.New("down"))
	}}
	r, err := NewRetryingSearcher(inner, 3, time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Search(ctx, "pier")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, inner.calls)
}

func TestRetryingSearcher_BiasedPassthrough(t *testing.T) {
	want := []core.Place{{Id: 2, Name: "Harbor Cafe"}}
	inner := &stubBiasedSearcher{}
	inner.fn = func(call int) ([]core.Place, error) {
		if call == 1 {
			return nil, Transport(errors.New("timeout"))
		}
		return want, nil
	}

	r, err := NewRetryingSearcher(inner, 2, time.Millisecond)
	require.NoError(t, err)

	bias := core.Region{Center: core.Coordinates{Lat: 47.6, Lon: -122.33}, RadiusMeters: 500}
	got, err := r.SearchBiased(context.Background(), "cafe", bias)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 2, inner.biasedCalls)
	assert.Equal(t, bias, inner.lastBias)
}

func TestRetryingSearcher_BiasedFallsBackToBasic(t *testing.T) {
	inner := &stubSearcher{fn: func(int) ([]core.Place, error) {
		return []core.Place{{Id: 3, Name: "Gas & Go"}}, nil
	}}
	r, err := NewRetryingSearcher(inner, 2, time.Millisecond)
	require.NoError(t, err)

	bias := core.Region{Center: core.Coordinates{Lat: 47.6, Lon: -122.33}, RadiusMeters: 500}
	got, err := r.SearchBiased(context.Background(), "gas", bias)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, inner.calls)
}
