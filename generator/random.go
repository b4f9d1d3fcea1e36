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
	"math/rand/v2"

	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/id"
)

// RandomName is reported to the generation handler by Random.
const RandomName = "strid.Random"

// CharacterTable is the alphabet a Random generator samples from.
type CharacterTable string

const alnumTable CharacterTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Alnum returns a table with all English letters (both cases) and digits.
func Alnum() CharacterTable {
	return alnumTable
}

// Alpha returns a table with all English letters (both cases).
func Alpha() CharacterTable {
	return alnumTable[:len(alnumTable)-10]
}

// NewRandom returns a generator that appends length characters drawn
// independently and uniformly from table to prefix, using the
// caller-supplied random source. An empty table falls back to Alnum.
func NewRandom[H apis.Hash](prefix id.ID[H], rng *rand.Rand, length int, table CharacterTable) *Random[H] {
	if len(table) == 0 {
		table = Alnum()
	}
	return &Random[H]{prefix: prefix, rng: rng, length: length, table: table}
}

// Random generates identifiers of the form prefix+random characters.
// Retries redraw all characters. It is safe for concurrent use only if the
// supplied random source is.
type Random[H apis.Hash] struct {
	prefix id.ID[H]
	rng    *rand.Rand
	length int
	table  CharacterTable
}

// Ensure Random implements Generator.
var _ Generator[uint64] = (*Random[uint64])(nil)

// Generate returns the next randomly suffixed identifier.
func (r *Random[H]) Generate() (id.ID[H], error) {
	buf := make([]byte, r.length)
	return tryGenerate(RandomName, func() string {
		for i := range buf {
			buf[i] = r.table[r.rng.IntN(len(r.table))]
		}
		return string(buf)
	}, r.prefix)
}

// Discard consumes n outputs of the underlying random source.
func (r *Random[H]) Discard(n uint64) {
	for ; n > 0; n-- {
		r.rng.Uint64()
	}
}
