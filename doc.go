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

// Package strid provides a process-local string interning database.
//
// strid turns strings into small, cheap-to-copy, cheap-to-compare handles
// (hashes) while retaining the ability to recover the original string for
// diagnostics, and it proactively detects when two distinct strings hash to
// the same value. A companion generator layer produces strings guaranteed
// unique within the database by retrying candidate suffixes until a fresh
// value is found.
//
// # Design
//
// The core of strid is the apis.Database contract — insert a string under a
// hash, insert a string formed from a stored prefix plus a new suffix, and
// look the string back up — with three engines behind it:
//
//   - database.Map: the real engine. An open hash table whose buckets are
//     intrusive singly linked chains ordered by ascending hash, with
//     automatic growth by doubling. The chain order makes "find the insert
//     position" and "detect a same-hash entry" one and the same scan, which
//     is what turns every insert into an implicit collision test.
//
//   - database.Dummy: the disabled engine. Accepts everything, retains
//     nothing, answers every lookup with a fixed placeholder. Use it when
//     memory footprint matters more than debuggability.
//
//   - database.Synchronized: a wrapper around any engine that serializes
//     every call behind one mutex. Individual calls are linearizable;
//     compound caller-side sequences are not.
//
// Databases are generic over their hash width (uint32 or uint64, the
// apis.Hash constraint). Hashing itself is the fixed FNV-1a primitive from
// the hash package; because FNV-1a is byte-sequential, the hash of
// prefix+suffix can be continued from the prefix's hash, which is what
// makes derived identifiers cheap.
//
// # Identifiers and generators
//
// The id package provides the caller-facing handle: a hash paired with a
// non-owning reference to its database. id.New interns a string, id.Derive
// interns prefix+suffix, id.Literal hashes without interning. Handle
// equality is hash equality — two handles name the same string exactly as
// long as no collision has been reported for that hash.
//
// The generator package layers unique-value generation on top: a counter
// generator (atomic counter rendered as decimal digits), a random generator
// (fixed-length draws from a character table) and a UUID generator. All
// drive the same retry protocol against the database and escalate to the
// process-wide generation handler when a candidate already exists.
//
// # Error handling
//
// Two process-wide, independently replaceable hooks govern failure, one set
// per hash width (see the handler package):
//
//   - The collision handler is invoked from inside Insert/InsertPrefix when
//     two distinct strings map to one hash. The default aborts the insert
//     with a *handler.CollisionError naming both strings; a custom handler
//     may log, merge or otherwise recover, in which case the insert still
//     reports apis.StatusCollision.
//
//   - The generation handler is invoked from generator retry loops with a
//     1-based attempt count. The default permits 8 attempts and then stops
//     with a *handler.GenerationError naming the generator.
//
// Handlers are stored behind atomic pointers, so replacing one concurrently
// with its invocation is race-free. They are the sole extension point for
// recovery: retry policies, alternate naming schemes, metrics emission or
// silent acceptance of a degraded identifier all hang off them.
//
// # Usage
//
// A typical component does:
//
//	db := strid.New[uint64]()
//	user, status, err := id.New(db, "user_")
//	...
//	gen := generator.NewCounter(user, 0, 3)
//	next, err := gen.Generate() // user_000, user_001, ...
//
// Construction-time knobs come from the config package, either as
// functional options (config.WithSynchronized(true), config.WithBuckets(n))
// or from a YAML file via config.Load for embedding binaries.
//
// # Concurrency model
//
// strid has no internal goroutines; it is a synchronous library invoked on
// the caller's goroutine. Pick the posture at construction time: an
// unsynchronized database requires external serialization, a synchronized
// one serializes each call. No operation blocks on I/O, and every operation
// is bounded by table size and retry budget. Two racing generators may
// propose the same candidate; exactly one of them observes StatusNew.
//
// # Scope
//
// strid is intentionally small. It does not persist to disk, share tables
// across processes, or compact its string table — entries live for the
// lifetime of the database. Everything else (caching policy, persistence,
// distribution) belongs to higher layers.
package strid
