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


package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrSearcherRequired is returned when a wrapped searcher is not provided.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrInvalidMaxAttempts is returned for a non-positive attempt budget.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than zero")
)

// Kind classifies provider failures into the small taxonomy callers
// are expected to act on.
type Kind int

const (
	// KindUnknown is any failure the provider did not classify.
	KindUnknown Kind = iota
	// KindTransport is a network or backend-service failure.
	KindTransport
	// KindNoResults means the query was understood but matched nothing.
	KindNoResults
	// KindBadQuery means the query text could not be interpreted.
	KindBadQuery
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindNoResults:
		return "no-results"
	case KindBadQuery:
		return "bad-query"
	default:
		return "unknown"
	}
}

// SearchError is a classified provider failure.
type SearchError struct {
	Kind Kind
	Err  error
}

func (e *SearchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("search failed (%s)", e.Kind)
	}
	return fmt.Sprintf("search failed (%s): %v", e.Kind, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Transport wraps err as a transport-level failure.
func Transport(err error) error {
	return &SearchError{Kind: KindTransport, Err: err}
}

// NoResults reports that a query matched nothing.
func NoResults() error {
	return &SearchError{Kind: KindNoResults}
}

// BadQuery reports that query text could not be interpreted.
func BadQuery(reason string) error {
	return &SearchError{Kind: KindBadQuery, Err: errors.New(reason)}
}

// KindOf extracts the failure kind from err.
// Errors that are not SearchError values classify as KindUnknown.
func KindOf(err error) Kind {
	var se *SearchError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
