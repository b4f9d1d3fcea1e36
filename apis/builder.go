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

// Builder constructs a Database variant from a Config.
// Implementations decide how config knobs map onto engine, wrapper and
// defaults; the stock builder lives in the builder package.
type Builder[H Hash] interface {
	// Build constructs a Database for cfg. It never returns nil.
	Build(cfg Config) Database[H]
}
