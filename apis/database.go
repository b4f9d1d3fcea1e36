/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// InsertStatus is the outcome of an insert operation.
type InsertStatus uint8

const (
	// StatusCollision means two different strings map to the same hash.
	StatusCollision InsertStatus = iota
	// StatusNew means a new string was stored.
	StatusNew
	// StatusOld means the exact string was already stored under this hash.
	StatusOld
)

// String returns a short human-readable form of the status.
func (s InsertStatus) String() string {
	switch s {
	case StatusCollision:
		return "collision"
	case StatusNew:
		return "new"
	case StatusOld:
		return "old"
	default:
		return "unknown"
	}
}

// Database is the storage contract every interning backend satisfies.
// Keep it minimal so implementations can be empty, single-threaded or
// mutex-guarded.
//
// A database's identity is its address: implementations must not be copied
// after first use, since identifier handles hold non-owning references to the
// instance they were interned into.
type Database[H Hash] interface {
	// Insert stores str under hash and reports the outcome. str does not
	// need to outlive the call; implementations copy it before storing.
	// On StatusCollision the installed collision handler has already been
	// invoked; its verdict is returned as the error (nil if it recovered).
	Insert(hash H, str []byte) (InsertStatus, error)

	// InsertPrefix stores the concatenation of the string previously
	// inserted under prefix and suffix, keyed by hash. It is semantically
	// Insert(hash, lookup(prefix)+suffix); implementations may avoid
	// materializing the intermediate concatenation.
	InsertPrefix(hash, prefix H, suffix []byte) (InsertStatus, error)

	// Lookup returns the string stored under hash. It is only defined for
	// hashes previously reported StatusNew or StatusOld; other hashes
	// yield "". The return value stays valid for the database's lifetime.
	Lookup(hash H) string

	// Count returns the number of distinct strings stored.
	Count() int
}
