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

// Package numlit converts the text of numeric literals, as written in source
// code or passed to a numeric constructor at runtime, into exact values.
//
// There are two entry points:
//
//   - [Config.ParseInt] parses integers in any base from 2 to 36, with
//     optional `0x`, `0o` and `0b` prefixes. Values that fit in an int64 are
//     returned as a [SmallInt]; larger ones are returned as a [BigInt] with
//     exactly the same value.
//   - [Config.ParseDecimal] parses decimal literals with an optional fraction
//     and exponent, optionally followed by an imaginary suffix, and the
//     special spellings `inf`, `infinity` and `nan`. It returns a [Float] or
//     a [Complex].
//
// [ParseInt] and [ParseDecimal] are shorthands for the same operations with
// the zero Config.
//
// # Exactness
//
// Decimal literals are not converted with [strconv.ParseFloat]. Instead the
// digits are accumulated into an arbitrary-precision integer, which is then
// scaled by the appropriate power of five and two using integer arithmetic
// and rounded once. The result is always the float64 nearest to the value
// of the literal, ties going to even, including for subnormal results.
//
// Mantissas are capped at a little more than the precision of a float64:
// digits past that point only affect the exponent. Exponents are likewise
// saturated rather than allowed to overflow, since any exponent larger than a
// few hundred already makes the result zero or infinity.
//
// # Errors
//
// Malformed literals produce a [*ValueError]. When the caller passes a
// [reporter.SourcePos], meaning that the literal came out of a source file,
// the error is instead a [*SyntaxError] carrying that position, which
// unwraps to the ValueError. An out-of-range base produces an
// [*ArgumentError], and a request for a feature disabled in the [Config]
// produces an [*UnsupportedError]. All of them can be matched with
// [errors.Is] against [ErrInvalidSyntax], [ErrInvalidBase] and
// [ErrUnsupported].
//
// Setting the NUMLIT_DEBUG environment variable adds the internal reason for
// a syntax error to its message; setting it to "full" also adds the offset
// at which the problem was found.
package numlit
