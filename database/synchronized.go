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

package database

import (
	"sync"

	"dirpx.dev/strid/apis"
)

// NewSynchronized wraps any database so that every call runs under one
// mutex. Individual calls are linearizable; compound "check then insert"
// sequences by callers are not protected.
func NewSynchronized[H apis.Hash](db apis.Database[H]) *Synchronized[H] {
	return &Synchronized[H]{db: db}
}

// Synchronized serializes all access to the wrapped database.
type Synchronized[H apis.Hash] struct {
	mu sync.Mutex
	db apis.Database[H]
}

// Ensure Synchronized implements apis.Database in both widths.
var (
	_ apis.Database[uint32] = (*Synchronized[uint32])(nil)
	_ apis.Database[uint64] = (*Synchronized[uint64])(nil)
)

// Insert forwards to the wrapped database under the lock.
// The deferred unlock also releases the lock if a handler panics.
func (s *Synchronized[H]) Insert(hash H, str []byte) (apis.InsertStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Insert(hash, str)
}

// InsertPrefix forwards to the wrapped database under the lock.
func (s *Synchronized[H]) InsertPrefix(hash, prefix H, suffix []byte) (apis.InsertStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.InsertPrefix(hash, prefix, suffix)
}

// Lookup forwards to the wrapped database under the lock.
func (s *Synchronized[H]) Lookup(hash H) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Lookup(hash)
}

// Count forwards to the wrapped database under the lock.
func (s *Synchronized[H]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Count()
}
