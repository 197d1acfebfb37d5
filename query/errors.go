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


package query

import "errors"

var (
	// ErrSearcherRequired is returned when a search provider is not provided.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrInvalidDebounce is returned for a negative debounce delay.
	ErrInvalidDebounce = errors.New("debounce delay cannot be negative")

	// ErrMonitorRequired is returned when a nil lifecycle monitor is supplied.
	ErrMonitorRequired = errors.New("monitor required")
)
