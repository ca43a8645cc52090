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
	"math/big"
	"strconv"
)

// Kind identifies which variant of [Value] a value is.
type Kind int8

const (
	KindSmallInt Kind = 1 + iota
	KindBigInt
	KindFloat
	KindComplex
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindSmallInt:
		return "small int"
	case KindBigInt:
		return "big int"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the result of a successful conversion. It is one of [SmallInt],
// [BigInt], [Float] or [Complex]; callers are expected to use a type switch.
type Value interface {
	Kind() Kind
	String() string

	isValue()
}

// SmallInt is an integer that fits in an int64.
type SmallInt int64

// BigInt is an integer that does not fit in an int64.
type BigInt struct {
	v *big.Int
}

// Float is a binary floating-point value.
type Float float64

// Complex is a complex value, produced for imaginary literals or when a
// complex result is forced.
type Complex complex128

var (
	_ Value = SmallInt(0)
	_ Value = BigInt{}
	_ Value = Float(0)
	_ Value = Complex(0)
)

func (SmallInt) Kind() Kind { return KindSmallInt }
func (BigInt) Kind() Kind   { return KindBigInt }
func (Float) Kind() Kind    { return KindFloat }
func (Complex) Kind() Kind  { return KindComplex }

func (v SmallInt) String() string { return strconv.FormatInt(int64(v), 10) }
func (v BigInt) String() string   { return v.v.String() }
func (v Float) String() string    { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Complex) String() string  { return strconv.FormatComplex(complex128(v), 'g', -1, 128) }

func (SmallInt) isValue() {}
func (BigInt) isValue()   {}
func (Float) isValue()    {}
func (Complex) isValue()  {}

// Int returns a copy of the underlying integer.
func (v BigInt) Int() *big.Int {
	return new(big.Int).Set(v.v)
}

// AsBig returns the value of an integer [Value] as a [big.Int]. Returns
// false for non-integer values.
func AsBig(v Value) (*big.Int, bool) {
	switch v := v.(type) {
	case SmallInt:
		return big.NewInt(int64(v)), true
	case BigInt:
		return v.Int(), true
	default:
		return nil, false
	}
}
