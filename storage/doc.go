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


// Package storage defines the engine contract for the datablock store.
//
// The Engine interface is the full set of entry points a storage engine must
// provide: handle lifecycle (close, clone), presence and type queries, typed
// get/put/replace for each supported scalar and one-dimensional array type,
// and the leased-buffer string protocol. Every operation reports a
// core.Status; none of them panic on bad input.
//
// # Status discipline
//
// Engine methods never return Go errors. Each operation yields exactly one
// status from the closed core.Status set, and callers are expected to check
// it immediately. The one deliberate exception to plain statuses is
// ArrayLength, which follows the native convention of returning a negative
// length when the entry is absent or not a one-dimensional array; callers
// disambiguate with HasValue.
//
// # String buffers
//
// GetString returns a buffer owned by the engine's buffer pool. The caller
// must copy the bytes out and then hand the buffer back with ReleaseString.
// Retaining the buffer past the release, or releasing it twice, corrupts the
// pool. The wrapper layer in the root package is the only intended caller.
//
// # Serialization
//
// Values are stored as a one-byte type tag followed by a MUS-encoded payload.
// The Marshal*/Unmarshal* helpers in this package are shared by any Engine
// implementation; see serialization.go.
//
// # Concurrency
//
// An Engine instance assumes single-threaded use. Callers that need
// concurrent access must serialize externally or clone one engine per
// goroutine.
package storage
