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

package handler

import (
	"fmt"

	"dirpx.dev/strid/apis"
)

// MaxGenerationAttempts is the retry budget of the default generation
// handler: it permits this many attempts before giving up.
const MaxGenerationAttempts = 8

// CollisionError reports that two different strings produced the same hash.
// It is returned by the default collision handler.
type CollisionError[H apis.Hash] struct {
	// Hash is the value both strings map to.
	Hash H
	// First and Second are the two colliding strings.
	First, Second string
}

// Error describes the collision, naming both offending strings.
func (e *CollisionError[H]) Error() string {
	return fmt.Sprintf("strid(handler): strings %q and %q are both producing the value %d",
		e.First, e.Second, uint64(e.Hash))
}

// GenerationError reports that a generator exhausted its retry budget
// without finding a fresh value. It is returned by the default generation
// handler.
type GenerationError struct {
	// Generator is the name of the exhausted generator.
	Generator string
}

// Error describes the exhaustion, naming the generator.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("strid(handler): generator %q was unable to generate a new string id", e.Generator)
}

// DefaultCollision is the collision handler installed at init: it aborts the
// insert with a *CollisionError carrying both strings and the hash.
func DefaultCollision[H apis.Hash](hash H, a, b string) error {
	return &CollisionError[H]{Hash: hash, First: a, Second: b}
}

// DefaultGeneration is the generation handler installed at init: it permits
// MaxGenerationAttempts attempts, then stops with a *GenerationError.
func DefaultGeneration[H apis.Hash](attempt int, generator string, _ H, _ string) (bool, error) {
	if attempt >= MaxGenerationAttempts {
		return false, &GenerationError{Generator: generator}
	}
	return true, nil
}
