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

// Package lexer contains the scanners that walk the text of a numeric
// literal: sign and radix prefix detection, integer digit runs, decimal
// literals and the special float spellings.
package lexer

import (
	"errors"

	"github.com/bufbuild/numlit/internal/ext/unicodex"
)

var (
	// ErrNoDigits is returned when a literal has no digits where some were
	// required.
	ErrNoDigits = errors.New("no digits")
	// ErrDanglingExponent is returned when the text ends right after an
	// exponent marker or its sign.
	ErrDanglingExponent = errors.New("exponent has no digits")
	// ErrTrailing is returned when text is left over after a literal.
	ErrTrailing = errors.New("unexpected trailing characters")
)

// Cursor is a scanning position within the text of a single literal.
//
// The text is never modified, and the cursor only ever moves forward.
type Cursor struct {
	text   string
	offset int
}

// NewCursor returns a cursor at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: text}
}

// Text returns the full text being scanned.
func (c *Cursor) Text() string {
	return c.text
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.offset
}

// Rest returns the text that has not been consumed yet.
func (c *Cursor) Rest() string {
	return c.text[c.offset:]
}

// Done returns whether the whole text has been consumed.
func (c *Cursor) Done() bool {
	return c.offset >= len(c.text)
}

// Peek returns the next byte without consuming it.
//
// Returns -1 if c.Done().
func (c *Cursor) Peek() int {
	if c.Done() {
		return -1
	}
	return int(c.text[c.offset])
}

// Pop consumes the next byte.
//
// Returns -1 if c.Done().
func (c *Cursor) Pop() int {
	b := c.Peek()
	if b != -1 {
		c.offset++
	}
	return b
}

// Advance consumes n bytes, stopping at the end of the text.
func (c *Cursor) Advance(n int) {
	c.offset = min(c.offset+max(n, 0), len(c.text))
}

// SkipSpace consumes any whitespace at the cursor.
func (c *Cursor) SkipSpace() {
	for !c.Done() && unicodex.IsSpace(c.text[c.offset]) {
		c.offset++
	}
}

// TakeFold consumes word if the text at the cursor is equal to it under ASCII
// case folding. word must be lowercase.
func (c *Cursor) TakeFold(word string) bool {
	rest := c.Rest()
	if len(rest) < len(word) {
		return false
	}
	for i := range len(word) {
		if unicodex.ToLower(rest[i]) != word[i] {
			return false
		}
	}
	c.offset += len(word)
	return true
}
