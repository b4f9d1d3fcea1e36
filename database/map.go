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

import (
	"errors"
	"math"
	"strings"

	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/config"
	"dirpx.dev/strid/handler"
)

// ErrUnknownPrefix is returned by InsertPrefix when the prefix hash was
// never inserted into this database (for example because it came from a
// disabled database). The returned status carries no meaning then.
var ErrUnknownPrefix = errors.New("strid(database): prefix hash not inserted")

// NewMap constructs the interning hash table. Only Buckets and MaxLoadFactor
// are used here; out-of-range values fall back to the config defaults.
func NewMap[H apis.Hash](cfg apis.Config) *Map[H] {
	buckets := cfg.Buckets
	if buckets <= 0 {
		buckets = config.DefaultBuckets
	}
	load := cfg.MaxLoadFactor
	if load <= 0 {
		load = config.DefaultMaxLoadFactor
	}
	return &Map[H]{
		buckets:    make([]bucket[H], buckets),
		maxLoad:    load,
		nextResize: int(math.Floor(float64(buckets) * load)),
	}
}

// Map is the interning hash table: an array of buckets, each an intrusive
// singly linked chain of nodes ordered by ascending hash. The order makes
// "find the insert position" and "detect a same-hash entry" the same scan.
//
// A Map is not safe for concurrent use; wrap it in NewSynchronized or
// serialize access externally. It must not be copied after first use.
type Map[H apis.Hash] struct {
	noCopy noCopy

	// buckets is the current bucket array; index is hash % len(buckets).
	buckets []bucket[H]
	// items counts distinct stored strings.
	items int
	// maxLoad is the items/buckets ratio that triggers growth.
	maxLoad float64
	// nextResize caches floor(len(buckets) * maxLoad).
	nextResize int
}

// Ensure Map implements apis.Database in both widths.
var (
	_ apis.Database[uint32] = (*Map[uint32])(nil)
	_ apis.Database[uint64] = (*Map[uint64])(nil)
)

// Insert stores str under hash, reporting StatusNew, StatusOld for a
// byte-identical resubmission, or StatusCollision for a different string
// under the same hash. On collision the installed collision handler has
// already been consulted and its verdict is returned as the error.
func (m *Map[H]) Insert(hash H, str []byte) (apis.InsertStatus, error) {
	// Grow before the position search so the threshold is evaluated
	// against a consistent bucket count.
	if m.items+1 >= m.nextResize {
		m.grow()
	}
	link, found := m.bucket(hash).insertPos(hash)
	if found != nil {
		if found.str == string(str) {
			return apis.StatusOld, nil
		}
		return apis.StatusCollision, handler.Collision[H]()(hash, found.str, string(str))
	}
	*link = &node[H]{hash: hash, next: *link, str: string(str)}
	m.items++
	return apis.StatusNew, nil
}

// InsertPrefix stores the string previously inserted under prefix followed
// by suffix, keyed by hash. The payload is built in a single sized
// allocation. An unknown prefix yields ErrUnknownPrefix.
func (m *Map[H]) InsertPrefix(hash, prefix H, suffix []byte) (apis.InsertStatus, error) {
	if m.items+1 >= m.nextResize {
		m.grow()
	}
	pn := m.bucket(prefix).find(prefix)
	if pn == nil {
		return apis.StatusCollision, ErrUnknownPrefix
	}
	var sb strings.Builder
	sb.Grow(len(pn.str) + len(suffix))
	sb.WriteString(pn.str)
	sb.Write(suffix)
	str := sb.String()

	link, found := m.bucket(hash).insertPos(hash)
	if found != nil {
		if found.str == str {
			return apis.StatusOld, nil
		}
		return apis.StatusCollision, handler.Collision[H]()(hash, found.str, str)
	}
	*link = &node[H]{hash: hash, next: *link, str: str}
	m.items++
	return apis.StatusNew, nil
}

// Lookup returns the string stored under hash, or "" if the hash was never
// inserted. Lookup is only defined for previously inserted hashes.
func (m *Map[H]) Lookup(hash H) string {
	if n := m.bucket(hash).find(hash); n != nil {
		return n.str
	}
	return ""
}

// Count returns the number of distinct stored strings.
func (m *Map[H]) Count() int {
	return m.items
}

// bucket returns the chain responsible for hash.
func (m *Map[H]) bucket(hash H) *bucket[H] {
	return &m.buckets[int(hash%H(len(m.buckets)))]
}

// grow doubles the bucket array and relinks every node into its new chain,
// preserving per-bucket ascending order. Nodes are moved, never copied.
func (m *Map[H]) grow() {
	next := make([]bucket[H], 2*len(m.buckets))
	size := H(len(next))
	for i := range m.buckets {
		cur := m.buckets[i].head
		for cur != nil {
			after := cur.next
			link, _ := next[int(cur.hash%size)].insertPos(cur.hash)
			cur.next = *link
			*link = cur
			cur = after
		}
		m.buckets[i].head = nil
	}
	m.buckets = next
	m.nextResize = int(math.Floor(float64(len(next)) * m.maxLoad))
}

// node is one stored string together with its hash and chain link.
// Nodes are immutable after construction.
type node[H apis.Hash] struct {
	hash H
	next *node[H]
	str  string
}

// bucket is one hash slot's chain, ordered by strictly ascending hash.
type bucket[H apis.Hash] struct {
	head *node[H]
}

// insertPos scans the ordered chain for hash. It returns the link through
// which a node with that hash is reachable (found != nil), or the link where
// such a node should be spliced in (found == nil).
func (b *bucket[H]) insertPos(hash H) (link **node[H], found *node[H]) {
	link = &b.head
	for *link != nil && (*link).hash <= hash {
		if (*link).hash == hash {
			return link, *link
		}
		link = &(*link).next
	}
	return link, nil
}

// find returns the node stored under hash, or nil.
func (b *bucket[H]) find(hash H) *node[H] {
	for cur := b.head; cur != nil && cur.hash <= hash; cur = cur.next {
		if cur.hash == hash {
			return cur
		}
	}
	return nil
}

// noCopy flags Map as not copyable for go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
