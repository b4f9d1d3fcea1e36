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

// Store selects which storage engine backs a database.
type Store string

const (
	// StoreMap selects the interning hash table.
	StoreMap Store = "map"
	// StoreNone disables interning; inserts succeed but nothing is stored
	// and lookups return a fixed placeholder.
	StoreNone Store = "none"
)

// Config carries the construction-time knobs of a database.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Store selects the storage engine. Defaults to StoreMap.
	Store Store

	// Synchronized wraps the engine so every call holds a mutex.
	// Without it the caller must serialize access externally.
	Synchronized bool

	// Buckets is the initial bucket count of the hash table.
	Buckets int

	// MaxLoadFactor is the items/buckets ratio that triggers growth.
	MaxLoadFactor float64
}
