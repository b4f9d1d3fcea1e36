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

// Package id provides the caller-facing identifier handle: a hash paired
// with a non-owning reference to the database it was interned into.
//
// Handles are small, cheap to copy and cheap to compare; the database
// retains the original string for diagnostics and actively screens for
// collisions. A handle must not outlive its database.
package id

import (
	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/hash"
)

// ID pairs an FNV-1a hash with the database that stores its string.
// The zero ID is valid and resolves to "".
type ID[H apis.Hash] struct {
	hash H
	db   apis.Database[H]
}

// New interns s into db and returns its handle together with the insert
// outcome. The returned handle is usable even when the outcome is a
// collision; it then refers to the previously stored string.
func New[H apis.Hash](db apis.Database[H], s string) (ID[H], apis.InsertStatus, error) {
	h := hash.SumString[H](s)
	status, err := db.Insert(h, []byte(s))
	return ID[H]{hash: h, db: db}, status, err
}

// Derive interns the string of prefix followed by suffix into prefix's
// database. The hash is continued from the prefix hash, so the result
// equals New(db, prefixString+suffix) without materializing the
// concatenation here.
func Derive[H apis.Hash](prefix ID[H], suffix string) (ID[H], apis.InsertStatus, error) {
	h := hash.SeedString(suffix, prefix.hash)
	status, err := prefix.db.InsertPrefix(h, prefix.hash, []byte(suffix))
	return ID[H]{hash: h, db: prefix.db}, status, err
}

// Literal returns a handle for s without interning it, for matching against
// identifiers interned elsewhere. Collisions are not screened on this path
// and String resolves only if some equal string was interned separately.
func Literal[H apis.Hash](db apis.Database[H], s string) ID[H] {
	return ID[H]{hash: hash.SumString[H](s), db: db}
}

// Hash returns the identifier's hash value.
func (i ID[H]) Hash() H {
	return i.hash
}

// String resolves the interned string through the owning database.
// The zero ID yields "".
func (i ID[H]) String() string {
	if i.db == nil {
		return ""
	}
	return i.db.Lookup(i.hash)
}

// Database returns the owning database, nil for the zero ID.
func (i ID[H]) Database() apis.Database[H] {
	return i.db
}

// Equal reports whether a and b name the same string: equal hashes interned
// into the same database. This is only meaningful while no collision has
// been reported for the hash; collisions are a correctness hazard the
// database screens for, not something the handle resolves.
func (i ID[H]) Equal(other ID[H]) bool {
	return i.hash == other.hash && i.db == other.db
}
