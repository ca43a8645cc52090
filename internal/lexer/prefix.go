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

import "github.com/bufbuild/numlit/internal/ext/unicodex"

// Sign is the sign written in front of a literal.
type Sign int8

const (
	Positive Sign = iota
	Negative
)

// ScanSign skips leading whitespace and consumes an optional `+` or `-`.
func ScanSign(c *Cursor) Sign {
	c.SkipSpace()
	switch c.Peek() {
	case '+':
		c.Pop()
	case '-':
		c.Pop()
		return Negative
	}
	return Positive
}

// ScanPrefix consumes an optional radix prefix and returns the base the
// digits that follow should be parsed in.
//
// A base of 0 means the base is inferred: `0x`, `0o` and `0b` (in either
// case) select bases 16, 8 and 2, and anything else selects base 10. A
// non-zero base only accepts its own prefix, if it has one, and is
// returned unchanged.
func ScanPrefix(c *Cursor, base int) int {
	resolved := base
	if resolved == 0 {
		resolved = 10
	}

	rest := c.Rest()
	if len(rest) < 2 || rest[0] != '0' {
		return resolved
	}

	var implied int
	switch unicodex.ToLower(rest[1]) {
	case 'x':
		implied = 16
	case 'o':
		implied = 8
	case 'b':
		implied = 2
	default:
		return resolved
	}

	if base != 0 && base != implied {
		// For example, 0b1 in base 16 is the number 0xb1.
		return resolved
	}

	c.Advance(2)
	return implied
}
