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

import (
	"math"
	"math/big"

	"github.com/bufbuild/numlit/internal/arena"
	"github.com/bufbuild/numlit/internal/ext/bitsx"
)

const (
	// MantissaCeiling is the bit length at which a decimal mantissa stops
	// absorbing digits: the 53 bits of a float64 significand plus guard bits.
	MantissaCeiling = 53 + 15

	// ExponentCeiling is the largest value the exponent digits of a decimal
	// literal accumulate to. Anything beyond a few hundred already produces
	// zero or infinity, so larger exponents are truncated. The headroom
	// leaves space for the fractional adjustment without overflow.
	ExponentCeiling = math.MaxInt32 / 2
)

// Decimal is a scanned decimal literal, whose value is
// Mantissa * 10^Exp.
type Decimal struct {
	// The digits of the literal, stripped of the decimal point. Allocated
	// from the scratch passed to [ScanDecimal].
	Mantissa *big.Int
	Exp      int

	// The number of mantissa digits seen, including ones that were too
	// insignificant to be absorbed into Mantissa.
	Digits int

	// Whether the literal ended in an imaginary unit suffix.
	Imaginary bool
}

// decimalState is where in a decimal literal the scanner is.
type decimalState int8

const (
	inInteger decimalState = iota
	inFraction
	inExponent
)

// ScanDecimal scans a decimal literal of the form
//
//	digits [. digits] [(e|E) [+|-] digits] [j|J]
//
// where any part may contain `_` separators and the imaginary suffix is only
// recognized if allowImaginary is set. Scanning stops, without consuming it,
// at the first byte that does not fit the grammar.
//
// An exponent marker must not end the text, but it may be followed by no
// digits at all, as in `1e_`; such an exponent is zero.
//
// Once Mantissa reaches [MantissaCeiling] bits, further integer digits only
// bump the exponent and further fraction digits are dropped.
func ScanDecimal(c *Cursor, s *arena.Scratch, allowImaginary bool) (Decimal, error) {
	d := Decimal{Mantissa: s.Int()}
	ten := s.IntFrom(10)
	digit := s.Int()

	var (
		state    = inInteger
		expValue int
		expSign  = 1
		extra    int
	)

loop:
	for !c.Done() {
		b := byte(c.Peek())
		switch {
		case b >= '0' && b <= '9':
			c.Pop()
			if state == inExponent {
				expValue, _ = bitsx.SaturatingMulAdd(expValue, 10, int(b-'0'), ExponentCeiling)
				continue
			}

			d.Digits++
			switch {
			case d.Mantissa.BitLen() < MantissaCeiling:
				d.Mantissa.Mul(d.Mantissa, ten)
				d.Mantissa.Add(d.Mantissa, digit.SetUint64(uint64(b-'0')))
				if state == inFraction {
					extra--
				}
			case state == inInteger:
				// Too small to matter, but it still scales the value.
				extra++
			}

		case b == '.' && state == inInteger:
			c.Pop()
			state = inFraction

		case (b == 'e' || b == 'E') && state != inExponent:
			c.Pop()
			state = inExponent
			switch c.Peek() {
			case '+':
				c.Pop()
			case '-':
				c.Pop()
				expSign = -1
			}
			if c.Done() {
				return d, ErrDanglingExponent
			}

		case (b == 'j' || b == 'J') && allowImaginary:
			c.Pop()
			d.Imaginary = true
			break loop

		case b == '_':
			c.Pop()

		default:
			break loop
		}
	}

	if d.Digits == 0 {
		return d, ErrNoDigits
	}

	d.Exp = expValue*expSign + extra
	return d, nil
}
