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

package numlit

import (
	"errors"
	"fmt"

	"github.com/bufbuild/numlit/internal/ext/unicodex"
	"github.com/bufbuild/numlit/internal/lexer"
	"github.com/bufbuild/numlit/reporter"
)

var (
	// ErrInvalidBase matches any [*ArgumentError] with [errors.Is].
	ErrInvalidBase = errors.New("invalid base")
	// ErrInvalidSyntax matches any [*ValueError] with [errors.Is], including
	// one wrapped in a [*SyntaxError].
	ErrInvalidSyntax = errors.New("invalid syntax")
	// ErrUnsupported matches any [*UnsupportedError] with [errors.Is].
	ErrUnsupported = errors.New("unsupported")

	// Reasons a literal is malformed. These are returned by
	// [ValueError.Unwrap].
	ErrNoDigits         = lexer.ErrNoDigits
	ErrDanglingExponent = lexer.ErrDanglingExponent
	ErrTrailing         = lexer.ErrTrailing
)

// Verbosity controls how much detail is put into the message of a
// [*ValueError].
type Verbosity int8

const (
	// Normal messages name the base an integer was parsed in.
	Normal Verbosity = iota
	// Terse messages only say what kind of literal was malformed.
	Terse
	// Verbose messages additionally quote the offending text.
	Verbose
)

// LiteralKind is the kind of literal a [*ValueError] is about.
type LiteralKind int8

const (
	IntegerLiteral LiteralKind = iota
	NumberLiteral
)

// Feature is something a [Config] can switch off.
type Feature int8

const (
	FeatureFloat Feature = iota
	FeatureComplex
)

// ArgumentError is returned when [Config.ParseInt] is passed a base outside
// of [2, 36]. It is never wrapped in a [*SyntaxError].
type ArgumentError struct {
	Base int
}

func (e *ArgumentError) Error() string {
	return "base must be >= 2 and <= 36"
}

// Is implements the interface used by [errors.Is].
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidBase
}

// ValueError is returned when the text passed to a conversion is not a
// well-formed literal.
type ValueError struct {
	Literal LiteralKind
	// The base an integer literal was parsed in; zero for other literals.
	Base int
	// The full text passed to the conversion.
	Text string
	// The byte offset in Text at which the literal proper begins, after
	// leading whitespace, the sign and any radix prefix.
	Start int
	// The byte offset in Text at which the problem was detected.
	Offset int
	// Why the literal is malformed; one of ErrNoDigits, ErrDanglingExponent
	// or ErrTrailing.
	Reason error

	verbosity Verbosity
}

func (e *ValueError) Error() string {
	return e.message(debugMode)
}

func (e *ValueError) message(debug int) string {
	var msg string
	switch {
	case e.Literal == NumberLiteral:
		msg = "invalid syntax for number"
	case e.verbosity == Terse:
		msg = "invalid syntax for integer"
	default:
		msg = fmt.Sprintf("invalid syntax for integer with base %d", e.Base)
	}

	if e.verbosity == Verbose {
		msg += ": " + unicodex.Quote(e.Text[min(e.Start, len(e.Text)):], 0)
	}

	switch debug {
	case debugMinimal:
		msg = fmt.Sprintf("%s (%v)", msg, e.Reason)
	case debugFull:
		msg = fmt.Sprintf("%s (%v at offset %d)", msg, e.Reason, e.Offset)
	}
	return msg
}

// Unwrap returns the reason the literal is malformed.
func (e *ValueError) Unwrap() error {
	return e.Reason
}

// Is implements the interface used by [errors.Is].
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidSyntax
}

// UnsupportedError is returned when a conversion needs a feature that the
// [Config] disables.
type UnsupportedError struct {
	Feature Feature
}

func (e *UnsupportedError) Error() string {
	if e.Feature == FeatureComplex {
		return "complex values not supported"
	}
	return "decimal numbers not supported"
}

// Is implements the interface used by [errors.Is].
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// SyntaxError is returned instead of a plain error when the literal came from
// source code, i.e., when a conversion is given a [reporter.SourcePos]. It
// records where the literal was found; Unwrap returns the error without
// location information.
type SyntaxError struct {
	reporter.ErrorWithPos
}

var _ reporter.ErrorWithPos = (*SyntaxError)(nil)

// raise prepares err to be returned to the caller: if the literal came from
// source code, err is re-tagged as a syntax error at that position.
func raise(err error, pos *reporter.SourcePos) error {
	if pos == nil {
		return err
	}
	return &SyntaxError{reporter.Error(*pos, err)}
}
