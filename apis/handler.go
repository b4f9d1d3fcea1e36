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

package apis

// CollisionHandler is called from within Insert/InsertPrefix whenever two
// different strings a and b map to the same hash. Returning a non-nil error
// aborts the insert with that error; returning nil recovers (log, merge,
// metrics, ...) and the insert still reports StatusCollision to its caller.
//
// The default handler returns a *handler.CollisionError.
type CollisionHandler[H Hash] func(hash H, a, b string) error

// GenerationHandler is called from a generator's retry loop each time a
// candidate turned out to exist already. attempt is 1-based, generator names
// the exhausted generator, hash and str describe the duplicate candidate.
//
// Returning retry=true asks the generator to try the next candidate.
// Returning retry=false with a nil error stops the loop; the generator then
// returns the last attempted identifier as-is. A non-nil error stops the
// loop and is propagated to the generator's caller.
//
// The default handler permits 8 attempts and then returns a
// *handler.GenerationError.
type GenerationHandler[H Hash] func(attempt int, generator string, hash H, str string) (retry bool, err error)
