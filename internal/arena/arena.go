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

// Package arena provides allocation of short-lived scratch values whose
// addresses stay fixed until they are released.
package arena

import (
	"fmt"
	"math/bits"
)

// minLenShift is the log2 of the size of the smallest slice in an [Arena].
const (
	minLenShift = 2
	minLen      = 1 << minLenShift
)

// Arena hands out pointers to zero values of T. Internally, it is a slice of
// T that guarantees the Ts will never be moved, which matters for types like
// [math/big.Int] that must not be copied once in use.
//
// It does this by maintaining a table of logarithmically-growing slices that
// mimic the resizing behavior of an ordinary slice. Calling [Arena.Reset]
// makes all previously handed out values available again.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(table[0]) == 1<<minLenShift.
	// 2. cap(table[n]) == 2*cap(table[n-1]).
	// 3. len(table[n]) == cap(table[n]); the slices are allocated up front
	//    and used tracks how many values are handed out.
	table [][]T
	used  int
}

// New returns a pointer to a value in the arena. The value is whatever was
// left in the slot by a previous user; callers are expected to reinitialize
// it.
func (a *Arena[T]) New() *T {
	if a.used == a.cap() {
		a.table = append(a.table, make([]T, a.lenOfNthSlice(len(a.table))))
	}

	slice, idx := a.coordinates(a.used)
	a.used++
	return &a.table[slice][idx]
}

// Len returns the number of values currently handed out.
func (a *Arena[T]) Len() int {
	return a.used
}

// Reset marks every value in the arena as available. Pointers previously
// returned by [Arena.New] must not be used after this.
func (a *Arena[T]) Reset() {
	a.used = 0
}

// All calls yield for every value the arena has ever allocated, including
// ones not currently handed out.
func (a *Arena[T]) All(yield func(*T)) {
	for _, slice := range a.table {
		for i := range slice {
			yield(&slice[i])
		}
	}
}

func (a *Arena[T]) cap() int {
	return a.lenOfFirstNSlices(len(a.table))
}

// lenOfNthSlice returns the length of the nth slice, even if it isn't
// allocated yet.
func (*Arena[T]) lenOfNthSlice(n int) int {
	return minLen << n
}

// lenOfFirstNSlices returns the length of the first n slices.
func (a *Arena[T]) lenOfFirstNSlices(n int) int {
	// Note the following identity:
	//
	// 2^m + 2^(m+1) + ... + 2^n = 2^(n+1) - 2^m
	//
	// This tells us that the sum of a.lenOfNthSlice(m) from 0 to n-1 (the first
	// n slices) is
	return max(0, a.lenOfNthSlice(n)-a.lenOfNthSlice(0))
}

// coordinates calculates the coordinates of the given index in table. It
// also performs a bounds check.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx >= a.cap() || idx < 0 {
		panic(fmt.Sprintf("arena: index out of range: %d", idx))
	}

	// Given minLenShift == n, the cumulative starting index of each slice is
	//
	// 0b0 << n, 0b1 << n, 0b11 << n, 0b111 << n
	//
	// Thus, to find which slice an index corresponds to, we add 0b1 << n (minLen).
	// Because << distributes over addition, we get
	//
	// 0b1 << n, 0b10 << n, 0b100 << n, 0b1000 << n
	//
	// Taking the one-indexed high order bit, which maps this sequence to
	//
	// 1+n, 2+n, 3+n, 4+n
	//
	// We can subtract off n+1 to obtain the actual slice index:
	//
	// 0, 1, 2, 3
	slice := bits.UintSize - bits.LeadingZeros(uint(idx)+minLen)
	slice -= minLenShift + 1

	// Then, the offset within table[slice] is given by subtracting off the
	// length of all prior slices from idx.
	idx -= a.lenOfFirstNSlices(slice)

	return slice, idx
}
