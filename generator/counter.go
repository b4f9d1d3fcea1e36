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
	"strconv"
	"strings"
	"sync/atomic"

	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/id"
)

// CounterName is reported to the generation handler by Counter.
const CounterName = "strid.Counter"

// NewCounter returns a generator that appends a decimal counter to prefix,
// starting at start. If length is non-zero the rendered number is
// zero-padded on the left to length digits, or truncated to its
// least-significant length digits when naturally longer.
func NewCounter[H apis.Hash](prefix id.ID[H], start uint64, length int) *Counter[H] {
	c := &Counter[H]{prefix: prefix, length: length}
	c.counter.Store(start)
	return c
}

// Counter generates identifiers of the form prefix+number. It may be used
// by multiple goroutines at the same time; every proposed candidate
// consumes one counter value, so retries naturally advance.
type Counter[H apis.Hash] struct {
	prefix  id.ID[H]
	counter atomic.Uint64
	length  int
}

// Ensure Counter implements Generator.
var _ Generator[uint64] = (*Counter[uint64])(nil)

// Generate returns the next counter-suffixed identifier.
func (c *Counter[H]) Generate() (id.ID[H], error) {
	return tryGenerate(CounterName, func() string {
		return formatCounter(c.counter.Add(1)-1, c.length)
	}, c.prefix)
}

// Discard advances the counter by n without generating.
func (c *Counter[H]) Discard(n uint64) {
	c.counter.Add(n)
}

// formatCounter renders v in decimal, padded or truncated to length digits
// (length 0 keeps the natural form).
func formatCounter(v uint64, length int) string {
	s := strconv.FormatUint(v, 10)
	switch {
	case length == 0 || len(s) == length:
		return s
	case len(s) < length:
		return strings.Repeat("0", length-len(s)) + s
	default:
		return s[len(s)-length:]
	}
}
