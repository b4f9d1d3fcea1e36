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

package strid

import (
	"dirpx.dev/strid/apis"
	"dirpx.dev/strid/builder"
	"dirpx.dev/strid/config"
	"dirpx.dev/strid/handler"
)

// New constructs a database for the given options using the stock builder.
// With no options this is the interning hash table with default sizing,
// unsynchronized.
func New[H apis.Hash](opts ...config.Option) apis.Database[H] {
	return builder.FromConfig[H](config.NewConfig(opts...))
}

// NewFromConfig constructs a database for cfg using the stock builder.
func NewFromConfig[H apis.Hash](cfg apis.Config) apis.Database[H] {
	return builder.FromConfig[H](cfg)
}

// SetCollisionHandler exchanges the process-wide collision handler for
// width H and returns the previous one.
// This is a convenience wrapper around the handler package.
func SetCollisionHandler[H apis.Hash](h apis.CollisionHandler[H]) apis.CollisionHandler[H] {
	return handler.SetCollision(h)
}

// CollisionHandler returns the current collision handler for width H.
// This is a convenience wrapper around the handler package.
func CollisionHandler[H apis.Hash]() apis.CollisionHandler[H] {
	return handler.Collision[H]()
}

// SetGenerationHandler exchanges the process-wide generation handler for
// width H and returns the previous one.
// This is a convenience wrapper around the handler package.
func SetGenerationHandler[H apis.Hash](h apis.GenerationHandler[H]) apis.GenerationHandler[H] {
	return handler.SetGeneration(h)
}

// GenerationHandler returns the current generation handler for width H.
// This is a convenience wrapper around the handler package.
func GenerationHandler[H apis.Hash]() apis.GenerationHandler[H] {
	return handler.Generation[H]()
}
