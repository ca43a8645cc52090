// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import "math"

// ScanSpecial consumes one of the special float spellings `inf`,
// `infinity` or `nan`, in any case, returning the value it denotes.
//
// Special values take no suffix: whatever follows them is left for the
// caller, which treats it as trailing garbage.
func ScanSpecial(c *Cursor) (float64, bool) {
	switch {
	case c.TakeFold("inf"):
		c.TakeFold("inity")
		return math.Inf(1), true
	case c.TakeFold("nan"):
		return math.NaN(), true
	default:
		return 0, false
	}
}
