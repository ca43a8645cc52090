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
	"github.com/bufbuild/numlit/internal/ext/unicodex"
)

// IntResult is the result of scanning an integer digit run.
type IntResult struct {
	// The value, if it fits in an int64.
	Small int64
	// The value, if it does not fit in an int64. The caller owns it.
	Big *big.Int
	// The number of digits consumed, not counting separators.
	Digits int
}

// ScanInt scans a run of digits in the given base, which must be in [2, 36].
//
// Underscores are skipped. The run ends at the first byte that is not a
// digit in base; that byte is not consumed. The sign is applied to the
// result.
//
// The value is accumulated in a uint64 while it fits in an int64; once it
// does not, the whole run is scanned again with arbitrary precision.
func ScanInt(c *Cursor, base int, sign Sign) IntResult {
	// The magnitude of math.MinInt64 is one more than that of math.MaxInt64.
	limit := uint64(math.MaxInt64)
	if sign == Negative {
		limit++
	}

	rest := c.Rest()
	var (
		value  uint64
		digits int
		n      int
	)
	for ; n < len(rest); n++ {
		class, digit := unicodex.Classify(rest[n], byte(base))
		if class == unicodex.ClassSeparator {
			continue
		}
		if class == unicodex.ClassTerminator {
			break
		}

		next, ok := bitsx.MulAdd64(value, uint64(base), uint64(digit))
		if !ok || next > limit {
			return promote(c, base, sign)
		}
		value = next
		digits++
	}
	c.Advance(n)

	result := IntResult{Small: int64(value), Digits: digits}
	if sign == Negative {
		// When value is 1<<63, int64(value) is already math.MinInt64 and
		// negating it is a no-op, which is what we want.
		result.Small = -result.Small
	}
	return result
}

// promote scans the digit run at the cursor into a big.Int, applying the
// same rules as [ScanInt].
func promote(c *Cursor, base int, sign Sign) IntResult {
	s := arena.NewScratch()
	defer s.Release()

	bigBase := s.IntFrom(int64(base)) // Memoize converting the base.
	bigDigit := s.Int()

	result := IntResult{Big: new(big.Int)}
	rest := c.Rest()
	n := 0
	for ; n < len(rest); n++ {
		class, digit := unicodex.Classify(rest[n], byte(base))
		if class == unicodex.ClassSeparator {
			continue
		}
		if class == unicodex.ClassTerminator {
			break
		}

		result.Big.Mul(result.Big, bigBase)
		result.Big.Add(result.Big, bigDigit.SetUint64(uint64(digit)))
		result.Digits++
	}
	c.Advance(n)

	if sign == Negative {
		result.Big.Neg(result.Big)
	}
	return result
}
