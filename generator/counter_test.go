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

package generator_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/config"
	"dirpx.dev/strid/database"
	"dirpx.dev/strid/generator"
	"dirpx.dev/strid/handler"
	"dirpx.dev/strid/id"
)

// newPrefix interns prefix into a fresh hash table and returns its handle.
func newPrefix(t *testing.T, prefix string) id.ID[uint64] {
	t.Helper()
	db := database.NewMap[uint64](config.DefaultConfig())
	p, status, err := id.New(db, prefix)
	require.NoError(t, err)
	require.Equal(t, apis.StatusNew, status)
	return p
}

func TestCounter_Sequence(t *testing.T) {
	gen := generator.NewCounter(newPrefix(t, "id_"), 0, 3)

	for _, want := range []string{"id_000", "id_001", "id_002"} {
		got, err := gen.Generate()
		require.NoError(t, err)
		assert.Equal(t, want, got.String())
	}
}

func TestCounter_Discard(t *testing.T) {
	gen := generator.NewCounter(newPrefix(t, "id_"), 0, 3)

	for i := 0; i < 3; i++ {
		_, err := gen.Generate()
		require.NoError(t, err)
	}
	gen.Discard(5)

	got, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "id_008", got.String())
}

func TestCounter_PaddingAndTruncation(t *testing.T) {
	// Natural form longer than length: least-significant digits are kept.
	gen := generator.NewCounter(newPrefix(t, "n_"), 1234, 3)
	got, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "n_234", got.String())

	// Length 0: natural form.
	gen = generator.NewCounter(newPrefix(t, "p_"), 42, 0)
	got, err = gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "p_42", got.String())
}

func TestCounter_ExhaustionAfterWraparound(t *testing.T) {
	prefix := newPrefix(t, "id_")
	gen := generator.NewCounter(prefix, 0, 3)

	// Use up the entire 3-digit value space.
	for i := 0; i < 1000; i++ {
		_, err := gen.Generate()
		require.NoError(t, err)
	}

	// Every further candidate wraps onto an existing value. Record the
	// attempt counts the handler sees while keeping the default policy.
	var attempts []int
	prev := handler.SetGeneration[uint64](func(attempt int, name string, h uint64, s string) (bool, error) {
		attempts = append(attempts, attempt)
		return handler.DefaultGeneration(attempt, name, h, s)
	})
	defer handler.SetGeneration(prev)

	_, err := gen.Generate()
	var gerr *handler.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, generator.CounterName, gerr.Generator)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, attempts)
}

func TestCounter_HandlerStopsWithoutError(t *testing.T) {
	prefix := newPrefix(t, "id_")
	gen := generator.NewCounter(prefix, 0, 3)

	first, err := gen.Generate()
	require.NoError(t, err)
	require.Equal(t, "id_000", first.String())

	// A handler that gives up immediately: the duplicate identifier is
	// returned as-is, without an error.
	prev := handler.SetGeneration[uint64](func(int, string, uint64, string) (bool, error) {
		return false, nil
	})
	defer handler.SetGeneration(prev)

	dup := generator.NewCounter(prefix, 0, 3)
	got, err := dup.Generate()
	require.NoError(t, err)
	assert.True(t, got.Equal(first))
	assert.Equal(t, "id_000", got.String())
}

func TestCounter_Concurrent(t *testing.T) {
	db := database.NewSynchronized[uint64](database.NewMap[uint64](config.DefaultConfig()))
	prefix, _, err := id.New[uint64](db, "c_")
	require.NoError(t, err)

	gen := generator.NewCounter(prefix, 0, 0)
	workers := runtime.GOMAXPROCS(0) * 2
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[uint64]string)

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				got, err := gen.Generate()
				if err != nil {
					t.Errorf("Generate: %v", err)
					return
				}
				mu.Lock()
				if prev, dup := seen[got.Hash()]; dup {
					t.Errorf("duplicate hash %#x for %q and %q", got.Hash(), prev, got.String())
				}
				seen[got.Hash()] = got.String()
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	// Prefix plus every generated value.
	assert.Equal(t, workers*perWorker+1, db.Count())
}
