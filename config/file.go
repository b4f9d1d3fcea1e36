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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/strid/apis"
)

// ErrUnknownStore is returned when a config file names a storage engine
// other than "map" or "none".
var ErrUnknownStore = errors.New(`strid(config): store must be "map" or "none"`)

// fileConfig mirrors apis.Config with pointer fields so that keys absent
// from the file keep their defaults.
type fileConfig struct {
	Store         *string  `yaml:"store"`
	Synchronized  *bool    `yaml:"synchronized"`
	Buckets       *int     `yaml:"buckets"`
	MaxLoadFactor *float64 `yaml:"max_load_factor"`
}

// Load reads a YAML config file and returns the resulting configuration.
// Missing keys keep their defaults.
func Load(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("strid(config): read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into a configuration.
// Missing keys keep their defaults.
func Parse(data []byte) (apis.Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return apis.Config{}, fmt.Errorf("strid(config): parse: %w", err)
	}

	cfg := DefaultConfig()
	if fc.Store != nil {
		switch store := apis.Store(*fc.Store); store {
		case apis.StoreMap, apis.StoreNone:
			cfg.Store = store
		default:
			return apis.Config{}, fmt.Errorf("%w: got %q", ErrUnknownStore, *fc.Store)
		}
	}
	if fc.Synchronized != nil {
		cfg.Synchronized = *fc.Synchronized
	}
	if fc.Buckets != nil && *fc.Buckets > 0 {
		cfg.Buckets = *fc.Buckets
	}
	if fc.MaxLoadFactor != nil && *fc.MaxLoadFactor > 0 {
		cfg.MaxLoadFactor = *fc.MaxLoadFactor
	}
	return cfg, nil
}
