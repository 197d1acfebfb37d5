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


// Package provider defines the location-search provider boundary.
//
// The coordination core consumes search backends through two capability
// interfaces rather than one interface with optional behavior:
//
//   - BasicSearcher: plain text search, the minimum every provider supports
//   - BiasedSearcher: additionally accepts a geographic bias region
//
// Callers that want biased search assert BiasedSearcher on the concrete
// value and fall back to BasicSearcher when the assertion fails. This keeps
// capability detection explicit and avoids reflective type inspection.
//
// Provider failures carry a small Kind taxonomy (transport, no results,
// malformed query) via the SearchError type so that callers can map them to
// user-facing behavior without string matching.
package provider
