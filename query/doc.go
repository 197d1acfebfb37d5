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


// Package query coordinates location searches driven by user keystrokes.
//
// The Coordinator owns a single query cycle:
//
//	Idle → Debouncing → Searching → Settled
//
// Keystrokes reset the debounce timer; once input goes quiet the
// coordinator consults the result cache (a synchronous fast path that
// displays cached results without a loading indicator) and then issues a
// provider call. Starting a call always cancels the previous one first,
// so at most one provider call is live per coordinator at any time, and a
// superseded call never writes to the cache or commits state.
//
// Provider failures never escape the coordinator: they land in the
// optional error field of the observable State, and only when no usable
// results (fresh or cached) are on display. Stale-but-present results win
// over an error banner.
//
// The UI layer observes the coordinator through Subscribe, which delivers
// immutable State snapshots; the coordinator has no rendering knowledge.
package query
