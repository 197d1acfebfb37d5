package core

import (
	"encoding/binary"
	"strconv"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for a physical place.
// Providers with stable identifiers map them onto this type directly;
// providers without use content-based hashing via IDFromContent.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Region is a geographic bias hint passed to search providers that
// support it: prefer results near Center, within roughly RadiusMeters.
type Region struct {
	Center       Coordinates
	RadiusMeters float64
}

// Place is a single location-search result. Places are immutable once
// returned by a provider; recency lists and caches compare them by Id only.
type Place struct {
	Id       ID
	Name     string
	Address  string
	Category string
	Coord    Coordinates
}

// Label returns a short display string for the place.
func (p Place) Label() string {
	if p.Address == "" {
		return p.Name
	}
	return p.Name + ", " + p.Address
}

// String implements fmt.Stringer for logging.
func (p Place) String() string {
	return p.Name + " (" + strconv.FormatUint(uint64(p.Id), 10) + ")"
}
