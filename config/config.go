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

package config

import (
	"dirpx.dev/strid/apis"
)

const (
	// DefaultStore represents the default storage engine.
	DefaultStore = apis.StoreMap
	// DefaultSynchronized represents the default for Synchronized.
	// Databases are unsynchronized unless asked for.
	DefaultSynchronized = false
	// DefaultBuckets represents the default initial bucket count.
	DefaultBuckets = 1024
	// DefaultMaxLoadFactor represents the default growth threshold ratio.
	DefaultMaxLoadFactor = 1.0
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure table knobs are valid.
	if cfg.Buckets <= 0 {
		cfg.Buckets = DefaultBuckets
	}
	if cfg.MaxLoadFactor <= 0 {
		cfg.MaxLoadFactor = DefaultMaxLoadFactor
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Store:         DefaultStore,
		Synchronized:  DefaultSynchronized,
		Buckets:       DefaultBuckets,
		MaxLoadFactor: DefaultMaxLoadFactor,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStore sets the storage engine.
func WithStore(store apis.Store) Option {
	return func(c *apis.Config) {
		c.Store = store
	}
}

// WithSynchronized sets the Synchronized option.
func WithSynchronized(synchronized bool) Option {
	return func(c *apis.Config) {
		c.Synchronized = synchronized
	}
}

// WithBuckets sets the initial bucket count.
// A non-positive value resets to the default.
func WithBuckets(buckets int) Option {
	return func(c *apis.Config) {
		if buckets <= 0 {
			c.Buckets = DefaultBuckets
			return
		}
		c.Buckets = buckets
	}
}

// WithMaxLoadFactor sets the growth threshold ratio.
// A non-positive value resets to the default.
func WithMaxLoadFactor(load float64) Option {
	return func(c *apis.Config) {
		if load <= 0 {
			c.MaxLoadFactor = DefaultMaxLoadFactor
			return
		}
		c.MaxLoadFactor = load
	}
}
