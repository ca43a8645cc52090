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
	"math"

	"github.com/bufbuild/numlit/internal/arena"
	"github.com/bufbuild/numlit/internal/fpconv"
	"github.com/bufbuild/numlit/internal/lexer"
	"github.com/bufbuild/numlit/reporter"
)

// Mode is a set of flags for [Config.ParseDecimal].
type Mode uint8

const (
	// ModeImaginary allows a trailing `j` or `J`, which makes the literal
	// imaginary.
	ModeImaginary Mode = 1 << iota
	// ModeForceComplex makes a non-imaginary result complex, with a zero
	// imaginary part.
	ModeForceComplex
)

// Config configures how literals are converted. The zero value is ready to
// use, with floating-point and complex support enabled and [Normal] error
// messages.
type Config struct {
	// How much detail to put into the messages of syntax errors.
	Verbosity Verbosity

	// If set, every call to ParseDecimal fails with an [*UnsupportedError].
	DisableFloat bool

	// If set, imaginary literals and ModeForceComplex fail with an
	// [*UnsupportedError].
	DisableComplex bool
}

// ParseInt converts text to an integer with the zero [Config]. See
// [Config.ParseInt].
func ParseInt(text string, base int) (Value, error) {
	return Config{}.ParseInt(text, base, nil)
}

// ParseDecimal converts text to a float or complex value with the zero
// [Config]. See [Config.ParseDecimal].
func ParseDecimal(text string, mode Mode) (Value, error) {
	return Config{}.ParseDecimal(text, mode, nil)
}

// ParseInt converts text to an integer. The result is a [SmallInt] if it
// fits in an int64, and a [BigInt] otherwise.
//
// The text may be padded with whitespace, and may start with a sign. If base
// is 0, it is inferred from a `0x`, `0o` or `0b` prefix, defaulting to 10;
// otherwise it must be in [2, 36], and the prefix matching it is optional.
// Letters of either case are digits with values from 10 to 35, and
// underscores between digits are ignored.
//
// If pos is not nil, the text is taken to be a literal from source code at
// that position, and syntax errors are returned as a [*SyntaxError]
// wrapping the [*ValueError]. An invalid base is always reported as an
// [*ArgumentError].
func (c Config) ParseInt(text string, base int, pos *reporter.SourcePos) (Value, error) {
	if base != 0 && (base < 2 || base > 36) {
		return nil, &ArgumentError{Base: base}
	}

	cursor := lexer.NewCursor(text)
	sign := lexer.ScanSign(cursor)
	base = lexer.ScanPrefix(cursor, base)
	start := cursor.Offset()

	result := lexer.ScanInt(cursor, base, sign)
	if err := c.finish(cursor, start, result.Digits > 0, IntegerLiteral, base, pos); err != nil {
		return nil, err
	}

	if result.Big != nil {
		return BigInt{v: result.Big}, nil
	}
	return SmallInt(result.Small), nil
}

// ParseDecimal converts text to a [Float], or to a [Complex] if it has an
// imaginary suffix or mode includes [ModeForceComplex].
//
// The text may be padded with whitespace, and may start with a sign. It is
// either `inf`, `infinity` or `nan` in any case, or a decimal literal with
// optional fractional part and exponent, such as `1_000.5e-3`. With
// [ModeImaginary], a trailing `j` or `J` makes a decimal literal imaginary;
// the special spellings never take it.
//
// The result is the float64 nearest to the literal's value, with ties
// rounded to even. Exponents so large or small that the value cannot be
// represented produce infinity or zero, respectively.
//
// If pos is not nil, the text is taken to be a literal from source code at
// that position, and errors are returned as a [*SyntaxError] wrapping the
// underlying error.
func (c Config) ParseDecimal(text string, mode Mode, pos *reporter.SourcePos) (Value, error) {
	if c.DisableFloat {
		return nil, raise(&UnsupportedError{Feature: FeatureFloat}, pos)
	}

	s := arena.NewScratch()
	defer s.Release()

	cursor := lexer.NewCursor(text)
	sign := lexer.ScanSign(cursor)
	start := cursor.Offset()

	value, special := lexer.ScanSpecial(cursor)
	found, imaginary := special, false
	if !special {
		dec, err := lexer.ScanDecimal(cursor, s, mode&ModeImaginary != 0)
		if err != nil {
			return nil, c.syntaxError(cursor, start, NumberLiteral, 0, err, pos)
		}

		found = dec.Digits > 0
		imaginary = dec.Imaginary
		if dec.Mantissa.Sign() != 0 {
			value = fpconv.Reduce(s, dec.Mantissa, dec.Exp)
		}
	}

	if sign == lexer.Negative {
		value = math.Copysign(value, -1)
	}

	if err := c.finish(cursor, start, found, NumberLiteral, 0, pos); err != nil {
		return nil, err
	}

	switch {
	case (imaginary || mode&ModeForceComplex != 0) && c.DisableComplex:
		return nil, raise(&UnsupportedError{Feature: FeatureComplex}, pos)
	case imaginary:
		return Complex(complex(0, value)), nil
	case mode&ModeForceComplex != 0:
		return Complex(complex(value, 0)), nil
	default:
		return Float(value), nil
	}
}

// finish checks that a literal was found and that nothing but whitespace
// follows it. start is where the literal's digits begin.
func (c Config) finish(cursor *lexer.Cursor, start int, found bool, kind LiteralKind, base int, pos *reporter.SourcePos) error {
	if !found {
		return c.syntaxError(cursor, start, kind, base, lexer.ErrNoDigits, pos)
	}

	cursor.SkipSpace()
	if !cursor.Done() {
		return c.syntaxError(cursor, start, kind, base, lexer.ErrTrailing, pos)
	}
	return nil
}

func (c Config) syntaxError(cursor *lexer.Cursor, start int, kind LiteralKind, base int, reason error, pos *reporter.SourcePos) error {
	return raise(&ValueError{
		Literal:   kind,
		Base:      base,
		Text:      cursor.Text(),
		Start:     start,
		Offset:    cursor.Offset(),
		Reason:    reason,
		verbosity: c.Verbosity,
	}, pos)
}
