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

package unicodex

// Class is the role a single byte plays inside a digit run.
type Class byte

const (
	// ClassTerminator ends a digit run. The byte is not consumed.
	ClassTerminator Class = iota
	// ClassDigit is a digit valid in the requested base.
	ClassDigit
	// ClassSeparator is a `_` digit separator, which is skipped.
	ClassSeparator
)

// Digit parses a digit in the given base, up to base 36.
func Digit(d rune, base byte) (value byte, ok bool) {
	switch {
	case d >= '0' && d <= '9':
		value = byte(d) - '0'

	case d >= 'a' && d <= 'z':
		value = byte(d) - 'a' + 10

	case d >= 'A' && d <= 'Z':
		value = byte(d) - 'A' + 10

	default:
		value = 0xff
	}

	if value >= base {
		return 0, false
	}
	return value, true
}

// Classify determines how b participates in a run of digits in the given
// base. value is only meaningful when the class is [ClassDigit].
func Classify(b byte, base byte) (class Class, value byte) {
	if b == '_' {
		return ClassSeparator, 0
	}
	if value, ok := Digit(rune(b), base); ok {
		return ClassDigit, value
	}
	return ClassTerminator, 0
}

// IsSpace reports whether b is an ASCII whitespace byte. Literal text is
// allowed to be padded with these on either side.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// ToLower folds an ASCII letter to lower case, leaving other bytes alone.
func ToLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}
