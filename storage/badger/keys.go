package badger

// Key prefixes for different data types
const (
	blobPrefix = "blob"
)

// makeBlobKey generates a key for a named blob.
func makeBlobKey(name string) []byte {
	prefix := blobPrefix + ":"
	buf := make([]byte, 0, len(prefix)+len(name))
	buf = append(buf, prefix...)
	buf = append(buf, name...)
	return buf
}
