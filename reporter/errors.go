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

// Package reporter contains the types used to attach source locations to
// errors raised while converting literals that came out of a source file.
package reporter

import (
	"fmt"
	"strconv"
)

// SourcePos identifies the line of a source file that a literal came from.
//
// A lexer that hands literal text to this module passes one of these along,
// which changes how conversion failures are reported.
type SourcePos struct {
	Filename string
	Line     int
}

// String renders the position as "file:line". A missing filename is
// rendered as "<input>", and a non-positive line is omitted.
func (p SourcePos) String() string {
	name := p.Filename
	if name == "" {
		name = "<input>"
	}
	if p.Line <= 0 {
		return name
	}
	return name + ":" + strconv.Itoa(p.Line)
}

// ErrorWithPos is an error about a source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the SourcePos and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() SourcePos
	Unwrap() error
}

// Error wraps err with the given position.
func Error(pos SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// errorWithSourcePos is the default implementation of [ErrorWithPos].
//
// Calling code that is trying to examine errors with location info should
// look for instances of the ErrorWithPos interface rather than this type.
type errorWithSourcePos struct {
	underlying error
	pos        SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying the location
// that caused the error.
func (e errorWithSourcePos) GetPosition() SourcePos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
