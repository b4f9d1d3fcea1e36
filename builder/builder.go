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

package builder

import (
	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/database"
)

// New creates and returns the stock apis.Builder for width H.
func New[H apis.Hash]() apis.Builder[H] {
	return builder[H]{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder[H apis.Hash] struct{}

// Ensure builder implements apis.Builder in both widths.
var (
	_ apis.Builder[uint32] = builder[uint32]{}
	_ apis.Builder[uint64] = builder[uint64]{}
)

// Build constructs the database variant selected by cfg: the interning hash
// table by default, the disabled engine for StoreNone, each optionally
// wrapped so all calls are serialized behind a mutex.
func (builder[H]) Build(cfg apis.Config) apis.Database[H] {
	var db apis.Database[H]
	switch cfg.Store {
	case apis.StoreNone:
		db = database.NewDummy[H]()
	default:
		db = database.NewMap[H](cfg)
	}
	if cfg.Synchronized {
		db = database.NewSynchronized(db)
	}
	return db
}

// FromConfig builds a database for cfg using the stock builder.
func FromConfig[H apis.Hash](cfg apis.Config) apis.Database[H] {
	return New[H]().Build(cfg)
}
