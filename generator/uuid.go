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

package generator

import (
	"github.com/google/uuid"

	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/id"
)

// UUIDName is reported to the generation handler by UUID.
const UUIDName = "strid.UUID"

// NewUUID returns a generator that appends a random UUID to prefix.
// Duplicate candidates are practically impossible, but the retry protocol
// still applies; hash collisions remain screened by the database.
func NewUUID[H apis.Hash](prefix id.ID[H]) *UUID[H] {
	return &UUID[H]{prefix: prefix, newFunc: uuid.NewString}
}

// UUID generates identifiers of the form prefix+uuid.
type UUID[H apis.Hash] struct {
	prefix id.ID[H]
	// newFunc produces the next UUID string; a field so tests can stub it.
	newFunc func() string
}

// Ensure UUID implements Generator.
var _ Generator[uint64] = (*UUID[uint64])(nil)

// Generate returns the next UUID-suffixed identifier.
func (u *UUID[H]) Generate() (id.ID[H], error) {
	return tryGenerate(UUIDName, u.newFunc, u.prefix)
}

// Discard is a no-op: there is no deterministic stream to advance.
func (u *UUID[H]) Discard(uint64) {}
