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

import "dirpx.dev/strid/apis"

// Placeholder is the fixed string a disabled database answers to every
// lookup.
const Placeholder = "strid database disabled"

// NewDummy returns a database that accepts everything and retains nothing.
// It never detects collisions and Lookup always returns Placeholder. Use it
// when memory footprint matters more than debuggability; identifier handles
// keep their shape, only the string recovery is lost.
func NewDummy[H apis.Hash]() *Dummy[H] {
	return &Dummy[H]{}
}

// Dummy is the disabled storage engine.
type Dummy[H apis.Hash] struct{}

// Ensure Dummy implements apis.Database in both widths.
var (
	_ apis.Database[uint32] = (*Dummy[uint32])(nil)
	_ apis.Database[uint64] = (*Dummy[uint64])(nil)
)

// Insert reports StatusNew without storing anything.
func (*Dummy[H]) Insert(H, []byte) (apis.InsertStatus, error) {
	return apis.StatusNew, nil
}

// InsertPrefix reports StatusNew without storing anything.
func (*Dummy[H]) InsertPrefix(H, H, []byte) (apis.InsertStatus, error) {
	return apis.StatusNew, nil
}

// Lookup returns Placeholder for every hash.
func (*Dummy[H]) Lookup(H) string {
	return Placeholder
}

// Count returns 0; nothing is ever stored.
func (*Dummy[H]) Count() int {
	return 0
}
