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

package database_test

import (
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/config"
	"dirpx.dev/strid/database"
	"dirpx.dev/strid/handler"
	"dirpx.dev/strid/hash"
)

func TestInsert_RoundTrip(t *testing.T) {
	db := database.NewMap[uint64](config.DefaultConfig())

	inputs := []string{"", "a", "hello", "id_", "some longer string with spaces"}
	for _, s := range inputs {
		h := hash.SumString64(s)
		status, err := db.Insert(h, []byte(s))
		if err != nil {
			t.Fatalf("Insert(%q): unexpected error: %v", s, err)
		}
		if status != apis.StatusNew {
			t.Fatalf("Insert(%q): status = %v, want new", s, status)
		}
		if got := db.Lookup(h); got != s {
			t.Fatalf("Lookup(%#x) = %q, want %q", h, got, s)
		}
	}
	if db.Count() != len(inputs) {
		t.Fatalf("Count() = %d, want %d", db.Count(), len(inputs))
	}
}

func TestInsert_DuplicateIsOld(t *testing.T) {
	db := database.NewMap[uint64](config.DefaultConfig())

	h := hash.SumString64("dup")
	if status, err := db.Insert(h, []byte("dup")); err != nil || status != apis.StatusNew {
		t.Fatalf("first Insert: got (%v, %v), want (new, nil)", status, err)
	}
	status, err := db.Insert(h, []byte("dup"))
	if err != nil {
		t.Fatalf("second Insert: unexpected error: %v", err)
	}
	if status != apis.StatusOld {
		t.Fatalf("second Insert: status = %v, want old", status)
	}
	if db.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", db.Count())
	}
}

func TestInsert_CollisionDefaultHandler(t *testing.T) {
	db := database.NewMap[uint64](config.DefaultConfig())

	// Same hash, different bytes: a forced collision.
	if _, err := db.Insert(42, []byte("first")); err != nil {
		t.Fatalf("Insert(first): unexpected error: %v", err)
	}
	status, err := db.Insert(42, []byte("second"))
	if status != apis.StatusCollision {
		t.Fatalf("status = %v, want collision", status)
	}
	var cerr *handler.CollisionError[uint64]
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *handler.CollisionError", err)
	}
	if cerr.Hash != 42 || cerr.First != "first" || cerr.Second != "second" {
		t.Fatalf("CollisionError = %+v, want hash 42 with both strings", cerr)
	}
	// The colliding string must not replace the stored one.
	if got := db.Lookup(42); got != "first" {
		t.Fatalf("Lookup(42) = %q, want %q", got, "first")
	}
}

func TestInsert_CollisionRecoveringHandler(t *testing.T) {
	var gotHash uint64
	var gotA, gotB string
	prev := handler.SetCollision[uint64](func(h uint64, a, b string) error {
		gotHash, gotA, gotB = h, a, b
		return nil
	})
	defer handler.SetCollision(prev)

	db := database.NewMap[uint64](config.DefaultConfig())
	if _, err := db.Insert(7, []byte("aaa")); err != nil {
		t.Fatalf("Insert(aaa): unexpected error: %v", err)
	}
	status, err := db.Insert(7, []byte("bbb"))
	if err != nil {
		t.Fatalf("recovering handler: unexpected error: %v", err)
	}
	if status != apis.StatusCollision {
		t.Fatalf("status = %v, want collision", status)
	}
	if gotHash != 7 || gotA != "aaa" || gotB != "bbb" {
		t.Fatalf("handler got (%d, %q, %q), want (7, aaa, bbb)", gotHash, gotA, gotB)
	}
}

func TestInsertPrefix_EquivalentToInsert(t *testing.T) {
	db := database.NewMap[uint64](config.DefaultConfig())

	prefix, suffix := "id_", "x"
	ph := hash.SumString64(prefix)
	if _, err := db.Insert(ph, []byte(prefix)); err != nil {
		t.Fatalf("Insert(prefix): unexpected error: %v", err)
	}

	h := hash.SumString64(prefix + suffix)
	status, err := db.InsertPrefix(h, ph, []byte(suffix))
	if err != nil {
		t.Fatalf("InsertPrefix: unexpected error: %v", err)
	}
	if status != apis.StatusNew {
		t.Fatalf("InsertPrefix: status = %v, want new", status)
	}
	if got := db.Lookup(h); got != prefix+suffix {
		t.Fatalf("Lookup = %q, want %q", got, prefix+suffix)
	}

	// A plain insert of the concatenation is now an old string.
	status, err = db.Insert(h, []byte(prefix+suffix))
	if err != nil || status != apis.StatusOld {
		t.Fatalf("Insert(concat): got (%v, %v), want (old, nil)", status, err)
	}
	if db.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", db.Count())
	}
}

func TestInsertPrefix_UnknownPrefix(t *testing.T) {
	db := database.NewMap[uint64](config.DefaultConfig())

	_, err := db.InsertPrefix(10, 99, []byte("x"))
	if !errors.Is(err, database.ErrUnknownPrefix) {
		t.Fatalf("error = %v, want ErrUnknownPrefix", err)
	}
	if db.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", db.Count())
	}
}

func TestLookup_NeverInserted(t *testing.T) {
	db := database.NewMap[uint64](config.DefaultConfig())
	if got := db.Lookup(12345); got != "" {
		t.Fatalf("Lookup(never inserted) = %q, want \"\"", got)
	}
}

func TestGrowth_PreservesEntries(t *testing.T) {
	// Tiny table so growth triggers several times.
	db := database.NewMap[uint64](config.NewConfig(
		config.WithBuckets(4),
		config.WithMaxLoadFactor(1.0),
	))

	const n = 64
	for i := uint64(0); i < n; i++ {
		s := fmt.Sprintf("entry-%d", i)
		status, err := db.Insert(i, []byte(s))
		if err != nil || status != apis.StatusNew {
			t.Fatalf("Insert(%d): got (%v, %v), want (new, nil)", i, status, err)
		}
	}
	if db.Count() != n {
		t.Fatalf("Count() = %d, want %d", db.Count(), n)
	}
	for i := uint64(0); i < n; i++ {
		want := fmt.Sprintf("entry-%d", i)
		if got := db.Lookup(i); got != want {
			t.Fatalf("Lookup(%d) after growth = %q, want %q", i, got, want)
		}
	}
}

func TestBucketChain_OutOfOrderInserts(t *testing.T) {
	// With 4 buckets and a load factor high enough to avoid growth, hashes
	// 19, 3, 11, 7 all land in bucket 3 and must be spliced in order.
	db := database.NewMap[uint64](config.NewConfig(
		config.WithBuckets(4),
		config.WithMaxLoadFactor(100),
	))

	hashes := []uint64{19, 3, 11, 7}
	for _, h := range hashes {
		s := fmt.Sprintf("h%d", h)
		status, err := db.Insert(h, []byte(s))
		if err != nil || status != apis.StatusNew {
			t.Fatalf("Insert(%d): got (%v, %v), want (new, nil)", h, status, err)
		}
	}
	for _, h := range hashes {
		want := fmt.Sprintf("h%d", h)
		if got := db.Lookup(h); got != want {
			t.Fatalf("Lookup(%d) = %q, want %q", h, got, want)
		}
	}
	// Re-insert out of order: all old, nothing duplicated.
	for _, h := range hashes {
		s := fmt.Sprintf("h%d", h)
		status, err := db.Insert(h, []byte(s))
		if err != nil || status != apis.StatusOld {
			t.Fatalf("re-Insert(%d): got (%v, %v), want (old, nil)", h, status, err)
		}
	}
	if db.Count() != len(hashes) {
		t.Fatalf("Count() = %d, want %d", db.Count(), len(hashes))
	}
}

func TestInsert_32BitWidth(t *testing.T) {
	db := database.NewMap[uint32](config.DefaultConfig())

	h := hash.SumString32("narrow")
	status, err := db.Insert(h, []byte("narrow"))
	if err != nil || status != apis.StatusNew {
		t.Fatalf("Insert: got (%v, %v), want (new, nil)", status, err)
	}
	if got := db.Lookup(h); got != "narrow" {
		t.Fatalf("Lookup = %q, want %q", got, "narrow")
	}
}
