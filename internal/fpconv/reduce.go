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

// Package fpconv converts an exact decimal value, given as an
// arbitrary-precision mantissa and a power-of-ten exponent, into the nearest
// float64.
//
// The conversion is performed entirely with integer arithmetic from
// [math/big] and rounds exactly once, so results are correctly rounded
// (ties-to-even) for normal and subnormal values alike.
package fpconv

import (
	"math"
	"math/big"

	"github.com/bufbuild/numlit/internal/arena"
)

const (
	// MaxExponent bounds the decimal exponent that is worth computing with.
	// Past it, the mantissas this package is handed (which are capped at a
	// few dozen bits by the scanner) can only produce zero or infinity.
	MaxExponent = 400

	// shiftBias is the number of extra bits a mantissa is scaled by before
	// dividing by a power of five, so that the quotient keeps at least 54
	// significant bits.
	shiftBias = 54

	// normalBits is the width a value is narrowed to before rounding: the 53
	// bits of a float64 significand plus a rounding bit and a sticky bit.
	normalBits = 55
)

// Reduce returns the float64 nearest to mant * 10^exp.
//
// mant must be non-negative; it is used as working storage and is clobbered.
// Temporaries are taken from s.
func Reduce(s *arena.Scratch, mant *big.Int, exp int) float64 {
	switch {
	case mant.Sign() == 0, exp < -MaxExponent:
		return 0
	case exp > MaxExponent:
		return math.Inf(1)
	}

	// 10^exp = 5^exp * 2^exp, so only the power of five needs to be
	// multiplied in; the power of two goes straight into the exponent.
	pow5 := s.Int().Exp(s.IntFrom(5), s.IntFrom(int64(abs(exp))), nil)
	binExp := exp
	if exp >= 0 {
		mant.Mul(mant, pow5)
	} else {
		// Dividing by 5^|exp| loses low bits, so scale up first. Since
		// 2^(3k) > 5^k, shifting by 3|exp| plus the bias guarantees the
		// quotient is at least 2^shiftBias.
		shift := 3*-exp + shiftBias
		mant.Lsh(mant, uint(shift))

		rem := s.Int()
		mant.QuoRem(mant, pow5, rem)
		if rem.Sign() != 0 {
			mant.SetBit(mant, 0, 1)
		}
		binExp -= shift
	}

	binExp += normalize(s, mant)

	// mant now has at most 56 bits, so this conversion is exact, and the only
	// rounding happens in Float64, which also takes care of subnormals and
	// overflow.
	var f big.Float
	f.SetInt(mant)
	f.SetMantExp(&f, binExp)
	v, _ := f.Float64()
	return v
}

// normalize shifts mant right until it is no greater than 2^normalBits,
// OR-ing every bit shifted out back into bit zero so that rounding can still
// tell whether the discarded part was zero. Returns the number of bits
// shifted out.
func normalize(s *arena.Scratch, mant *big.Int) int {
	var shifted int

	// Drop the bulk of the excess in one step, leaving two bits of slack
	// for the bit-at-a-time loop below.
	if excess := mant.BitLen() - (normalBits + 2); excess > 0 {
		sticky := mant.TrailingZeroBits() < uint(excess)
		mant.Rsh(mant, uint(excess))
		if sticky {
			mant.SetBit(mant, 0, 1)
		}
		shifted += excess
	}

	limit := s.Int().Lsh(s.IntFrom(1), normalBits)
	for mant.Cmp(limit) > 0 {
		carry := mant.Bit(0)
		mant.Rsh(mant, 1)
		mant.SetBit(mant, 0, carry|mant.Bit(0))
		shifted++
	}

	return shifted
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
