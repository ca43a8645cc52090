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

package numlit_test

import (
	"math"
	"math/big"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/numlit"
)

// valueComparer compares Values bit-for-bit, so that NaNs and signed zeros
// are distinguished.
var valueComparer = cmp.Options{
	cmp.Comparer(func(a, b numlit.BigInt) bool {
		return a.Int().Cmp(b.Int()) == 0
	}),
	cmp.Comparer(func(a, b numlit.Float) bool {
		return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
	}),
	cmp.Comparer(func(a, b numlit.Complex) bool {
		return math.Float64bits(real(a)) == math.Float64bits(real(b)) &&
			math.Float64bits(imag(a)) == math.Float64bits(imag(b))
	}),
}

func TestParseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		base int
		want int64
	}{
		{text: "0", want: 0},
		{text: "42", want: 42},
		{text: "  42  ", want: 42},
		{text: "\t-42\n", want: -42},
		{text: "+7", want: 7},
		{text: "1_000", want: 1000},
		{text: "1__0_", want: 10},
		{text: "0x1A", want: 26},
		{text: "0X1a", want: 26},
		{text: "0b101", want: 5},
		{text: "0o17", want: 15},
		{text: "-0o17", want: -15},
		{text: "010", want: 10},
		{text: "ff", base: 16, want: 255},
		{text: "0xff", base: 16, want: 255},
		{text: "0b1", base: 16, want: 0xb1},
		{text: "zz", base: 36, want: 35*36 + 35},
		{text: "ZZ", base: 36, want: 35*36 + 35},
		{text: "777", base: 8, want: 0o777},
		{text: "9223372036854775807", want: math.MaxInt64},
		{text: "-9223372036854775808", want: math.MinInt64},
		{text: "0x7fffffffffffffff", want: math.MaxInt64},
		{text: "-0x8000000000000000", want: math.MinInt64},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			v, err := numlit.ParseInt(test.text, test.base)
			require.NoError(t, err)
			assert.Equal(t, numlit.SmallInt(test.want), v)
			assert.Equal(t, numlit.KindSmallInt, v.Kind())
		})
	}
}

func TestParseIntPromotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		base int
		want string
	}{
		{text: "9223372036854775808", want: "9223372036854775808"},
		{text: "-9223372036854775809", want: "-9223372036854775809"},
		{text: "0x1_0000_0000_0000_0000", want: "18446744073709551616"},
		{text: "123456789012345678901234567890", want: "123456789012345678901234567890"},
		{text: " -1_000_000_000_000_000_000_000 ", want: "-1000000000000000000000"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			v, err := numlit.ParseInt(test.text, test.base)
			require.NoError(t, err)
			require.Equal(t, numlit.KindBigInt, v.Kind())
			assert.Equal(t, test.want, v.String())

			n, ok := numlit.AsBig(v)
			require.True(t, ok)
			assert.Equal(t, test.want, n.String())

			// The caller's copy is not shared with the Value.
			n.SetInt64(0)
			assert.Equal(t, test.want, v.String())
		})
	}
}

func TestParseIntAgreesWithBig(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 6))
	for range 2000 {
		base := 2 + rng.IntN(35)
		var text strings.Builder
		if rng.IntN(2) == 0 {
			text.WriteByte('-')
		}
		for range 1 + rng.IntN(40) {
			text.WriteString(strconv.FormatInt(int64(rng.IntN(base)), base))
		}

		want, ok := new(big.Int).SetString(text.String(), base)
		require.True(t, ok, text.String())

		v, err := numlit.ParseInt(text.String(), base)
		require.NoError(t, err, text.String())

		got, ok := numlit.AsBig(v)
		require.True(t, ok)
		assert.Zero(t, want.Cmp(got), "%q in base %d: got %v", text.String(), base, got)
		assert.Equal(t, want.IsInt64(), v.Kind() == numlit.KindSmallInt, "%q in base %d", text.String(), base)
	}
}

func TestParseIntErrors(t *testing.T) {
	t.Parallel()

	for _, base := range []int{-1, 1, 37, 100} {
		_, err := numlit.ParseInt("1", base)
		var argErr *numlit.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, base, argErr.Base)
		assert.ErrorIs(t, err, numlit.ErrInvalidBase)
		assert.Equal(t, "base must be >= 2 and <= 36", err.Error())
	}

	tests := []struct {
		text   string
		base   int
		reason error
		offset int
	}{
		{text: "", reason: numlit.ErrNoDigits},
		{text: "   ", reason: numlit.ErrNoDigits, offset: 3},
		{text: "-", reason: numlit.ErrNoDigits, offset: 1},
		{text: "_", reason: numlit.ErrNoDigits, offset: 1},
		{text: "___", reason: numlit.ErrNoDigits, offset: 3},
		{text: "0x", reason: numlit.ErrNoDigits, offset: 2},
		{text: "12a", base: 10, reason: numlit.ErrTrailing, offset: 2},
		{text: "1 2", reason: numlit.ErrTrailing, offset: 2},
		{text: "0b102", reason: numlit.ErrTrailing, offset: 4},
		{text: "1.5", reason: numlit.ErrTrailing, offset: 1},
		{text: "--1", reason: numlit.ErrNoDigits, offset: 1},
		{text: "99999999999999999999x", reason: numlit.ErrTrailing, offset: 20},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			v, err := numlit.ParseInt(test.text, test.base)
			assert.Nil(t, v)

			var valErr *numlit.ValueError
			require.ErrorAs(t, err, &valErr)
			assert.ErrorIs(t, err, numlit.ErrInvalidSyntax)
			assert.ErrorIs(t, err, test.reason)
			assert.Equal(t, numlit.IntegerLiteral, valErr.Literal)
			assert.Equal(t, test.text, valErr.Text)
			assert.Equal(t, test.offset, valErr.Offset)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	v, err := numlit.ParseDecimal("0.1", 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3fb999999999999a), math.Float64bits(float64(v.(numlit.Float))))

	tests := []string{
		"0", "0.0", "1", "1.", ".5", "3.14159", "1e10", "1E+10", "2.5e-3",
		"123456789012345678901234567890",
		"0.000000000000000000000000000001",
		"1.7976931348623157e308", "1.7976931348623159e308",
		"2.2250738585072014e-308", "2.2250738585072011e-308",
		"4.9406564584124654e-324", "2.4703282292062328e-324",
		"2.4703282292062327e-324", "1e-320", "9007199254740993",
		"9007199254740992.5", "0.30000000000000004",
		"1e500", "1e-500", "-1e500", "-0", "-0.0", "-1e-500",
		"  6.02214076e23  ",
		"3.333333333333333333333333333333333333333333333333333333333333e-5",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			want, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil {
				require.ErrorIs(t, err, strconv.ErrRange)
			}

			v, err := numlit.ParseDecimal(text, 0)
			require.NoError(t, err)
			require.Equal(t, numlit.KindFloat, v.Kind())
			assert.Equal(t, math.Float64bits(want), math.Float64bits(float64(v.(numlit.Float))),
				"got %v, want %v", v, want)
		})
	}
}

func TestParseDecimalSeparators(t *testing.T) {
	t.Parallel()

	v, err := numlit.ParseDecimal("1_000.000_5e-0_3", 0)
	require.NoError(t, err)
	assert.Equal(t, numlit.Float(1.0000005), v)

	// An exponent marker followed by something other than digits is a zero
	// exponent, as long as the marker does not end the text.
	for _, text := range []string{"1e+_", "1e_", "1E- ", "1e "} {
		v, err := numlit.ParseDecimal(text, 0)
		require.NoError(t, err, text)
		assert.Equal(t, numlit.Float(1), v, text)
	}

	v, err = numlit.ParseDecimal("2ej", numlit.ModeImaginary)
	require.NoError(t, err)
	assert.Equal(t, numlit.Complex(complex(0, 2)), v)
}

func TestParseDecimalSpecial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		mode numlit.Mode
		want numlit.Value
	}{
		{text: "inf", want: numlit.Float(math.Inf(1))},
		{text: "INFINITY", want: numlit.Float(math.Inf(1))},
		{text: " -Inf ", want: numlit.Float(math.Inf(-1))},
		{text: "+iNfInItY", want: numlit.Float(math.Inf(1))},
		{text: "nan", want: numlit.Float(math.NaN())},
		{text: "-NaN", want: numlit.Float(math.Copysign(math.NaN(), -1))},
		{text: "1j", mode: numlit.ModeImaginary, want: numlit.Complex(complex(0, 1))},
		{text: "1.5J", mode: numlit.ModeImaginary, want: numlit.Complex(complex(0, 1.5))},
		{text: "-2j", mode: numlit.ModeImaginary, want: numlit.Complex(complex(0, -2))},
		{text: "1e3j ", mode: numlit.ModeImaginary, want: numlit.Complex(complex(0, 1000))},
		{text: "1", mode: numlit.ModeImaginary, want: numlit.Float(1)},
		{text: "2.5", mode: numlit.ModeForceComplex, want: numlit.Complex(complex(2.5, 0))},
		{text: "nan", mode: numlit.ModeForceComplex, want: numlit.Complex(complex(math.NaN(), 0))},
		{
			text: "3j",
			mode: numlit.ModeImaginary | numlit.ModeForceComplex,
			want: numlit.Complex(complex(0, 3)),
		},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			v, err := numlit.ParseDecimal(test.text, test.mode)
			require.NoError(t, err)
			if diff := cmp.Diff(test.want, v, valueComparer); diff != "" {
				t.Errorf("unexpected value (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDecimalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		mode   numlit.Mode
		reason error
		offset int
	}{
		{text: "", reason: numlit.ErrNoDigits},
		{text: ".", reason: numlit.ErrNoDigits, offset: 1},
		{text: "e5", reason: numlit.ErrNoDigits, offset: 2},
		{text: "_", reason: numlit.ErrNoDigits, offset: 1},
		{text: "1e", reason: numlit.ErrDanglingExponent, offset: 2},
		{text: "1e+", reason: numlit.ErrDanglingExponent, offset: 3},
		{text: "1ex", reason: numlit.ErrTrailing, offset: 2},
		{text: "1.2.3", reason: numlit.ErrTrailing, offset: 3},
		{text: "1e5e5", reason: numlit.ErrTrailing, offset: 3},
		{text: "1j", reason: numlit.ErrTrailing, offset: 1},
		{text: "1jj", mode: numlit.ModeImaginary, reason: numlit.ErrTrailing, offset: 2},
		{text: "infx", reason: numlit.ErrTrailing, offset: 3},
		{text: "infin", reason: numlit.ErrTrailing, offset: 3},
		{text: "nanj", reason: numlit.ErrTrailing, offset: 3},
		{text: "infj", mode: numlit.ModeImaginary, reason: numlit.ErrTrailing, offset: 3},
		{text: "-nanJ", mode: numlit.ModeImaginary, reason: numlit.ErrTrailing, offset: 4},
		{text: "infinityj", mode: numlit.ModeImaginary, reason: numlit.ErrTrailing, offset: 8},
		{text: "0x10", reason: numlit.ErrTrailing, offset: 1},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			v, err := numlit.ParseDecimal(test.text, test.mode)
			assert.Nil(t, v)

			var valErr *numlit.ValueError
			require.ErrorAs(t, err, &valErr)
			assert.ErrorIs(t, err, numlit.ErrInvalidSyntax)
			assert.ErrorIs(t, err, test.reason)
			assert.Equal(t, numlit.NumberLiteral, valErr.Literal)
			assert.Equal(t, test.offset, valErr.Offset)
		})
	}
}

func TestConfigDisable(t *testing.T) {
	t.Parallel()

	noFloat := numlit.Config{DisableFloat: true}
	_, err := noFloat.ParseDecimal("1.5", 0, nil)
	var unsupported *numlit.UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, numlit.FeatureFloat, unsupported.Feature)
	assert.ErrorIs(t, err, numlit.ErrUnsupported)
	assert.Equal(t, "decimal numbers not supported", err.Error())

	// Integers are unaffected.
	v, err := noFloat.ParseInt("15", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, numlit.SmallInt(15), v)

	noComplex := numlit.Config{DisableComplex: true}
	for _, test := range []struct {
		text string
		mode numlit.Mode
	}{
		{"1j", numlit.ModeImaginary},
		{"1", numlit.ModeForceComplex},
		{"inf", numlit.ModeForceComplex},
	} {
		_, err := noComplex.ParseDecimal(test.text, test.mode, nil)
		require.ErrorAs(t, err, &unsupported, test.text)
		assert.Equal(t, numlit.FeatureComplex, unsupported.Feature)
		assert.Equal(t, "complex values not supported", err.Error())
	}

	v, err = noComplex.ParseDecimal("1", numlit.ModeImaginary, nil)
	require.NoError(t, err)
	assert.Equal(t, numlit.Float(1), v)

	// Malformed text is reported before the missing feature.
	_, err = noComplex.ParseDecimal("1jx", numlit.ModeImaginary, nil)
	assert.ErrorIs(t, err, numlit.ErrInvalidSyntax)

	// Special values never become imaginary, so there is no complex value
	// to refuse.
	_, err = noComplex.ParseDecimal("infJ", numlit.ModeImaginary, nil)
	assert.ErrorIs(t, err, numlit.ErrTrailing)
	assert.NotErrorIs(t, err, numlit.ErrUnsupported)
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		text string
		int  bool
	}{
		{"0x_dead_beef", true},
		{"-9223372036854775808", true},
		{"340282366920938463463374607431768211456", true},
		{"0.1", false},
		{"1e-310", false},
		{"-nan", false},
		{"1.5j", false},
		{"12a", true},
		{"1e", false},
	}

	parse := func(text string, isInt bool) (numlit.Value, error) {
		if isInt {
			return numlit.ParseInt(text, 0)
		}
		return numlit.ParseDecimal(text, numlit.ModeImaginary)
	}

	type result struct {
		Value numlit.Value
		Err   string
	}
	want := make([]result, len(inputs))
	for i, in := range inputs {
		v, err := parse(in.text, in.int)
		want[i].Value = v
		if err != nil {
			want[i].Err = err.Error()
		}
	}

	// Conversions share pooled scratch space; hammer it from many goroutines
	// and check that every result is the same as the sequential one.
	var group errgroup.Group
	got := make([][]result, 32)
	for g := range got {
		group.Go(func() error {
			got[g] = make([]result, len(inputs))
			for range 50 {
				for i, in := range inputs {
					v, err := parse(in.text, in.int)
					got[g][i].Value = v
					got[g][i].Err = ""
					if err != nil {
						got[g][i].Err = err.Error()
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())

	for g := range got {
		if diff := cmp.Diff(want, got[g], valueComparer); diff != "" {
			t.Errorf("goroutine %d diverged (-want +got):\n%s", g, diff)
		}
	}
}
