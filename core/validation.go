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


package core

import "fmt"

// ValidatePlace validates a Place according to domain rules.
//
// Validation rules:
//   - Id must be non-zero
//   - Name must not be empty
//   - Coordinates must be within valid ranges
//
// NOT validated:
//   - Address and Category (optional metadata, may be empty)
func ValidatePlace(place *Place) error {
	if place == nil {
		return fmt.Errorf("%w: place is nil", ErrInvalidPlace)
	}

	if place.Id == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPlace, ErrMissingID)
	}

	if place.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPlace, ErrEmptyName)
	}

	if !ValidCoordinates(place.Coord) {
		return fmt.Errorf("%w: %w", ErrInvalidPlace, ErrInvalidCoordinates)
	}

	return nil
}

// ValidateRegion validates a bias region.
//
// Validation rules:
//   - Center must be within valid coordinate ranges
//   - RadiusMeters must be positive
func ValidateRegion(region *Region) error {
	if region == nil {
		return fmt.Errorf("%w: region is nil", ErrInvalidRegion)
	}

	if !ValidCoordinates(region.Center) {
		return fmt.Errorf("%w: %w", ErrInvalidRegion, ErrInvalidCoordinates)
	}

	if region.RadiusMeters <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRegion, ErrInvalidRadius)
	}

	return nil
}

// ValidCoordinates checks that latitude and longitude are within range.
func ValidCoordinates(c Coordinates) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
