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

// Package generator produces identifiers guaranteed unique within their
// database by retrying candidate suffixes against the storage layer.
//
// All generators drive the same protocol: render a candidate suffix, derive
// prefix+candidate, and if the result is not new consult the process-wide
// generation handler for whether to try again. Two racing generators may
// propose the same candidate; the storage layer's atomicity decides which
// one observes StatusNew.
package generator

import (
	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/handler"
	"dirpx.dev/strid/id"
)

// Generator produces identifiers unique within their database.
type Generator[H apis.Hash] interface {
	// Generate returns a fresh identifier, retrying per the installed
	// generation handler when a candidate already exists. When the
	// handler stops the loop without an error, the last attempted
	// identifier is returned as-is.
	Generate() (id.ID[H], error)

	// Discard advances the generator's state by n candidates without
	// producing output or touching storage, so a deterministic stream
	// can be partitioned across independent generator instances.
	Discard(n uint64)
}

// tryGenerate is the shared retry loop. next renders successive candidate
// suffixes; the generation handler is consulted with a 1-based attempt
// count for every candidate that was not new.
func tryGenerate[H apis.Hash](name string, next func() string, prefix id.ID[H]) (id.ID[H], error) {
	result, status, err := id.Derive(prefix, next())
	for attempt := 1; status != apis.StatusNew; attempt++ {
		if err != nil {
			return result, err
		}
		retry, herr := handler.Generation[H]()(attempt, name, result.Hash(), result.String())
		if herr != nil {
			return result, herr
		}
		if !retry {
			return result, nil
		}
		result, status, err = id.Derive(prefix, next())
	}
	return result, nil
}
