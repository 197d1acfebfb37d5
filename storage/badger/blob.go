package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/placesearch/storage"
)

// BlobStore implements storage.BlobStore over a BadgerDB backend.
type BlobStore struct {
	backend *Backend
}

var _ storage.BlobStore = (*BlobStore)(nil)

// NewBlobStore creates a blob store on top of an open backend.
// The caller retains ownership of the backend; closing the store
// does not close it.
func NewBlobStore(backend *Backend) (storage.BlobStore, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &BlobStore{backend: backend}, nil
}

// Load retrieves the blob stored under key.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var data []byte
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeBlobKey(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save stores data under key, overwriting any existing blob.
func (s *BlobStore) Save(ctx context.Context, key string, data []byte) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeBlobKey(key), data); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Delete removes the blob stored under key. Missing keys are ignored.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeBlobKey(key)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close releases the store. The underlying backend stays open.
func (s *BlobStore) Close() error {
	return nil
}
