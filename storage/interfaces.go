package storage

import "context"

// BlobStore provides keyed storage of opaque byte blobs.
// Implementations must be thread-safe and support concurrent access.
type BlobStore interface {
	// Load retrieves the blob stored under key.
	// Returns ErrNotFound if no blob exists for the key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores data under key, overwriting any existing blob.
	// The write is atomic with respect to a single key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the blob stored under key.
	// Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close closes the storage backend and releases resources.
	Close() error
}
