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

package arena

import (
	"math/big"
	"sync"
)

// maxRetainedBits is the largest integer, in bits, that a released [Scratch]
// keeps its backing storage for. Larger ones are dropped so that one huge
// literal does not pin memory in the pool forever.
const maxRetainedBits = 1 << 14

var scratchPool = sync.Pool{
	New: func() any { return new(Scratch) },
}

// Scratch is a pooled arena of temporary arbitrary-precision integers used by
// a single conversion.
//
// Every Scratch obtained from [NewScratch] must be given back with
// [Scratch.Release], typically through defer, on every exit path. Integers
// handed out by [Scratch.Int] must not outlive the release.
type Scratch struct {
	ints Arena[big.Int]
}

// NewScratch takes a Scratch out of the shared pool.
func NewScratch() *Scratch {
	s, _ := scratchPool.Get().(*Scratch)
	return s
}

// Int returns a scratch integer set to zero.
func (s *Scratch) Int() *big.Int {
	return s.ints.New().SetUint64(0)
}

// IntFrom returns a scratch integer set to v.
func (s *Scratch) IntFrom(v int64) *big.Int {
	return s.ints.New().SetInt64(v)
}

// Live returns the number of integers handed out since the last release.
func (s *Scratch) Live() int {
	return s.ints.Len()
}

// Release returns the scratch space to the pool. s must not be used after
// this.
func (s *Scratch) Release() {
	s.ints.All(func(z *big.Int) {
		if z.BitLen() > maxRetainedBits {
			*z = big.Int{}
		}
	})
	s.ints.Reset()
	scratchPool.Put(s)
}
