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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPlace indicates a Place failed validation.
	ErrInvalidPlace = errors.New("invalid place")

	// ErrMissingID indicates the Id field is zero.
	ErrMissingID = errors.New("place id cannot be zero")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("place name cannot be empty")

	// ErrInvalidCoordinates indicates latitude or longitude is out of range.
	ErrInvalidCoordinates = errors.New("coordinates out of range")

	// ErrInvalidRegion indicates a bias region failed validation.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidRadius indicates a region radius is not positive.
	ErrInvalidRadius = errors.New("region radius must be positive")
)
