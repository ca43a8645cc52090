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

// Package bitsx contains extensions to Go's package math/bits.
package bitsx

import (
	"math/bits"

	"golang.org/x/exp/constraints" //nolint:exptostd // Needs Signed, which cmp lacks.
)

// MulAdd64 computes x*y + z, reporting whether the result fits in a uint64.
// On overflow, the returned value is meaningless.
func MulAdd64(x, y, z uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	sum, carry := bits.Add64(lo, z, 0)
	return sum, hi == 0 && carry == 0
}

// SaturatingMulAdd computes x*y + z for non-negative x, y and z, unless
// x exceeds (ceiling - z)/y, in which case it returns x unchanged and false.
//
// This is used for accumulators where additional digits past a point cannot
// change the meaning of the value, so dropping them is preferable to
// wrapping around.
func SaturatingMulAdd[T constraints.Signed](x, y, z, ceiling T) (T, bool) {
	if y <= 0 || x > (ceiling-z)/y {
		return x, false
	}
	return x*y + z, true
}
