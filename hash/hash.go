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

// Package hash provides the hashing primitives feeding a string database.
//
// FNV-1a is the default primitive in both widths. Because FNV-1a consumes
// its input byte by byte, a hash can be continued from a previous result:
// Seed64(x, Sum64(p)) == Sum64(p+x). Derived identifiers rely on this.
//
// XX64 is an alternative 64-bit primitive for callers that drive
// Database.Insert with their own hashing; it does not support seeding and
// therefore cannot be used for derived identifiers.
package hash

import (
	"github.com/cespare/xxhash/v2"

	"dirpx.dev/strid/apis"
)

const (
	// FNV-1a offset bases and primes.
	basis32 uint32 = 0x811c9dc5
	prime32 uint32 = 0x01000193
	basis64 uint64 = 14695981039346656037
	prime64 uint64 = 1099511628211
)

// Sum32 returns the 32-bit FNV-1a hash of b.
func Sum32(b []byte) uint32 {
	return Seed32(b, basis32)
}

// Seed32 continues a 32-bit FNV-1a hash from seed over b.
func Seed32(b []byte, seed uint32) uint32 {
	h := seed
	for _, c := range b {
		h ^= uint32(c)
		h *= prime32
	}
	return h
}

// Sum64 returns the 64-bit FNV-1a hash of b.
func Sum64(b []byte) uint64 {
	return Seed64(b, basis64)
}

// Seed64 continues a 64-bit FNV-1a hash from seed over b.
func Seed64(b []byte, seed uint64) uint64 {
	h := seed
	for _, c := range b {
		h ^= uint64(c)
		h *= prime64
	}
	return h
}

// SumString32 returns the 32-bit FNV-1a hash of s without copying it.
func SumString32(s string) uint32 {
	return SeedString32(s, basis32)
}

// SeedString32 continues a 32-bit FNV-1a hash from seed over s.
func SeedString32(s string, seed uint32) uint32 {
	h := seed
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return h
}

// SumString64 returns the 64-bit FNV-1a hash of s without copying it.
func SumString64(s string) uint64 {
	return SeedString64(s, basis64)
}

// SeedString64 continues a 64-bit FNV-1a hash from seed over s.
func SeedString64(s string, seed uint64) uint64 {
	h := seed
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

// Sum returns the FNV-1a hash of b in width H.
func Sum[H apis.Hash](b []byte) H {
	var zero H
	if _, ok := any(zero).(uint32); ok {
		return H(Sum32(b))
	}
	return H(Sum64(b))
}

// SumString returns the FNV-1a hash of s in width H.
func SumString[H apis.Hash](s string) H {
	var zero H
	if _, ok := any(zero).(uint32); ok {
		return H(SumString32(s))
	}
	return H(SumString64(s))
}

// SeedString continues an FNV-1a hash from seed over s in width H.
// SeedString(x, SumString(p)) equals SumString(p+x).
func SeedString[H apis.Hash](s string, seed H) H {
	var zero H
	if _, ok := any(zero).(uint32); ok {
		return H(SeedString32(s, uint32(seed)))
	}
	return H(SeedString64(s, uint64(seed)))
}

// XX64 returns the 64-bit xxHash of b.
func XX64(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// XXString64 returns the 64-bit xxHash of s without copying it.
func XXString64(s string) uint64 {
	return xxhash.Sum64String(s)
}
