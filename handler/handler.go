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

// Package handler holds the process-wide error handlers of strid.
//
// Two hooks exist per hash width: the collision handler, invoked by a
// database whenever two different strings map to one hash, and the
// generation handler, invoked by a generator whenever a candidate value was
// already taken. Both are installed with a default at init time, replaceable
// at any point and readable at any point; replacement is last-writer-wins.
//
// Handlers are stored behind atomic pointers, so replacing a handler
// concurrently with its invocation is race-free. The 32-bit and 64-bit
// handler sets are fully independent.
package handler

import (
	"sync/atomic"

	"dirpx.dev/strid/apis"
)

// handlers is one width's pair of hooks. Readers load, writers swap;
// the pointers are never nil after init.
type handlers[H apis.Hash] struct {
	collision  atomic.Pointer[apis.CollisionHandler[H]]
	generation atomic.Pointer[apis.GenerationHandler[H]]
}

var (
	// h32 and h64 are the per-width handler sets.
	h32 handlers[uint32]
	h64 handlers[uint64]
)

// init installs the default handlers for both widths.
func init() {
	install(&h32)
	install(&h64)
}

// install stores the defaults into hs.
func install[H apis.Hash](hs *handlers[H]) {
	c := apis.CollisionHandler[H](DefaultCollision[H])
	g := apis.GenerationHandler[H](DefaultGeneration[H])
	hs.collision.Store(&c)
	hs.generation.Store(&g)
}

// forWidth returns the handler set for H.
// The apis.Hash constraint is exact (uint32 | uint64, no approximation),
// so the two cases are exhaustive.
func forWidth[H apis.Hash]() *handlers[H] {
	var zero H
	if _, ok := any(zero).(uint32); ok {
		return any(&h32).(*handlers[H])
	}
	return any(&h64).(*handlers[H])
}

// SetCollision exchanges the collision handler for width H and returns the
// previous one, so callers can compose or restore it. A nil h reinstalls
// the default.
func SetCollision[H apis.Hash](h apis.CollisionHandler[H]) apis.CollisionHandler[H] {
	if h == nil {
		h = DefaultCollision[H]
	}
	prev := forWidth[H]().collision.Swap(&h)
	return *prev
}

// Collision returns the current collision handler for width H.
func Collision[H apis.Hash]() apis.CollisionHandler[H] {
	return *forWidth[H]().collision.Load()
}

// SetGeneration exchanges the generation handler for width H and returns the
// previous one, so callers can compose or restore it. A nil h reinstalls
// the default.
func SetGeneration[H apis.Hash](h apis.GenerationHandler[H]) apis.GenerationHandler[H] {
	if h == nil {
		h = DefaultGeneration[H]
	}
	prev := forWidth[H]().generation.Swap(&h)
	return *prev
}

// Generation returns the current generation handler for width H.
func Generation[H apis.Hash]() apis.GenerationHandler[H] {
	return *forWidth[H]().generation.Load()
}
