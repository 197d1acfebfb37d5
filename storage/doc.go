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


// Package storage provides the persistence abstraction layer for placesearch.
//
// The coordination core persists exactly one kind of state across sessions:
// the recent-selections list, stored as an opaque serialized blob under a
// fixed key. This package defines the BlobStore interface that decouples
// that persistence from any particular backend, plus the wire codec for
// place lists.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend subpackages return the BlobStore interface
// to enforce abstraction and enable multiple storage backend implementations:
//
//	blobs, err := badger.NewBlobStore(backend)  // returns storage.BlobStore
//
// This design decision prioritizes:
//   - Abstraction: Prevents accidental coupling to BadgerDB specifics
//   - Swappability: Easy to add alternative backends (bolt, files, in-memory)
//   - Testing: Consumers can use mock implementations without modification
//
// # Wire Format
//
// Place lists are encoded with hand-written MUS serializers (see the core
// package) wrapped in a one-byte version envelope. Decoders reject unknown
// versions and truncated payloads with typed errors; callers that persist
// best-effort state degrade to an empty list rather than propagating them.
//
// # Thread Safety
//
// All BlobStore implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All BlobStore methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
