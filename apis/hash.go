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

// Hash constrains the storage width of a database. A database instantiated
// with uint32 stores 32-bit hashes, one with uint64 stores 64-bit hashes.
// The width also selects which process-wide handler set applies (see the
// handler package); the two widths are fully independent.
type Hash interface {
	uint32 | uint64
}
