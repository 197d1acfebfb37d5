package recent

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/placesearch/core"
	badgerstore "github.com/poiesic/placesearch/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(name string) core.Place {
	return core.Place{Id: core.IDFromContent(name), Name: name}
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	blobs, backend, err := badgerstore.NewMemoryBlobStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		blobs.Close()
		backend.Close()
	})

	s, err := NewStore(blobs, opts...)
	require.NoError(t, err)
	t.Cleanup(s.Release)
	return s
}

func TestNewStore_NilBlobStore(t *testing.T) {
	_, err := NewStore(nil)
	assert.Equal(t, ErrBlobStoreRequired, err)
}

func TestStore_AddOrdersMostRecentFirst(t *testing.T) {
	s := newTestStore(t)

	s.Add(place("first"))
	s.Add(place("second"))
	s.Add(place("third"))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Name)
	assert.Equal(t, "first", all[2].Name)
}

func TestStore_ReselectPromotesWithoutDuplicate(t *testing.T) {
	s := newTestStore(t)

	s.Add(place("coffee"))
	s.Add(place("pier"))
	s.Add(place("coffee"))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "coffee", all[0].Name)
	assert.Equal(t, "pier", all[1].Name)
}

func TestStore_TruncatesToBound(t *testing.T) {
	s := newTestStore(t, WithMaxEntries(3))

	for i := 0; i < 4; i++ {
		s.Add(place(fmt.Sprintf("place %d", i)))
	}

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "place 3", all[0].Name)
	for _, p := range all {
		assert.NotEqual(t, "place 0", p.Name, "least recent selection is dropped")
	}
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	blobs, backend, err := badgerstore.NewMemoryBlobStore()
	require.NoError(t, err)
	defer func() {
		blobs.Close()
		backend.Close()
	}()

	s1, err := NewStore(blobs)
	require.NoError(t, err)
	s1.Add(place("coffee"))
	s1.Add(place("pier"))
	s1.Release()

	s2, err := NewStore(blobs)
	require.NoError(t, err)
	defer s2.Release()

	all := s2.All()
	require.Len(t, all, 2)
	assert.Equal(t, "pier", all[0].Name)
	assert.Equal(t, "coffee", all[1].Name)
}

func TestStore_CorruptBlobDegradesToEmpty(t *testing.T) {
	blobs, backend, err := badgerstore.NewMemoryBlobStore()
	require.NoError(t, err)
	defer func() {
		blobs.Close()
		backend.Close()
	}()

	require.NoError(t, blobs.Save(context.Background(), DefaultStorageKey, []byte{0xff, 0x01, 0x02}))

	s, err := NewStore(blobs)
	require.NoError(t, err)
	defer s.Release()

	assert.Empty(t, s.All())
}

func TestStore_PersistedListClampedToBound(t *testing.T) {
	blobs, backend, err := badgerstore.NewMemoryBlobStore()
	require.NoError(t, err)
	defer func() {
		blobs.Close()
		backend.Close()
	}()

	s1, err := NewStore(blobs)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		s1.Add(place(fmt.Sprintf("place %d", i)))
	}
	s1.Release()

	s2, err := NewStore(blobs, WithMaxEntries(2))
	require.NoError(t, err)
	defer s2.Release()

	assert.Len(t, s2.All(), 2)
}

func TestStore_Clear(t *testing.T) {
	blobs, backend, err := badgerstore.NewMemoryBlobStore()
	require.NoError(t, err)
	defer func() {
		blobs.Close()
		backend.Close()
	}()

	s, err := NewStore(blobs)
	require.NoError(t, err)
	s.Add(place("coffee"))
	s.Clear()
	s.Release()

	assert.Empty(t, s.All())

	s2, err := NewStore(blobs)
	require.NoError(t, err)
	defer s2.Release()
	assert.Empty(t, s2.All())
}

func TestStore_CustomStorageKey(t *testing.T) {
	blobs, backend, err := badgerstore.NewMemoryBlobStore()
	require.NoError(t, err)
	defer func() {
		blobs.Close()
		backend.Close()
	}()

	s1, err := NewStore(blobs, WithStorageKey("surface-a"))
	require.NoError(t, err)
	s1.Add(place("coffee"))
	s1.Release()

	s2, err := NewStore(blobs, WithStorageKey("surface-b"))
	require.NoError(t, err)
	defer s2.Release()

	assert.Empty(t, s2.All(), "keys isolate recent lists")
}

func TestStore_EmptyStorageKeyRejected(t *testing.T) {
	blobs, backend, err := badgerstore.NewMemoryBlobStore()
	require.NoError(t, err)
	defer func() {
		blobs.Close()
		backend.Close()
	}()

	_, err = NewStore(blobs, WithStorageKey(""))
	assert.Equal(t, ErrEmptyStorageKey, err)
}
