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


package storage

import (
	"fmt"

	"github.com/poiesic/placesearch/core"
)

// placeListVersion is the current wire format version for place-list blobs.
const placeListVersion byte = 1

// MarshalPlaces serializes an ordered place list to a versioned blob.
func MarshalPlaces(places []core.Place) []byte {
	buf := make([]byte, 1+core.PlaceSliceMUS.Size(places))
	buf[0] = placeListVersion
	core.PlaceSliceMUS.Marshal(places, buf[1:])
	return buf
}

// UnmarshalPlaces deserializes a place list from a versioned blob.
// Returns ErrTruncatedData for empty or short input and ErrUnknownVersion
// for blobs written by a later format revision.
func UnmarshalPlaces(data []byte) ([]core.Place, error) {
	if len(data) == 0 {
		return nil, ErrTruncatedData
	}
	if data[0] != placeListVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, data[0])
	}
	places, _, err := core.PlaceSliceMUS.Unmarshal(data[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return places, nil
}

// MarshalPlace serializes a single place.
func MarshalPlace(place *core.Place) []byte {
	buf := make([]byte, core.PlaceMUS.Size(*place))
	core.PlaceMUS.Marshal(*place, buf)
	return buf
}

// UnmarshalPlace deserializes a single place.
func UnmarshalPlace(data []byte) (*core.Place, error) {
	place, _, err := core.PlaceMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &place, nil
}
