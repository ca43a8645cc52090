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

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// MaxQuoteWidth is the default display width, in terminal columns, after
// which [Quote] elides the rest of its input.
const MaxQuoteWidth = 40

// NonPrint defines whether or not a rune is considered "unprintable for the
// purposes of error messages", that is, whether it is a rune that [Quote]
// replaces with an escape sequence.
func NonPrint(r rune) bool {
	return r != ' ' && !unicode.IsPrint(r)
}

// Quote renders text as a quoted literal suitable for embedding in an error
// message.
//
// Single quotes are used unless the text contains a single quote and no
// double quotes. Backslashes, the chosen quote, and unprintable runes are
// escaped; invalid UTF-8 is escaped byte by byte. Once the rendered text
// would be wider than maxWidth columns, the remainder is replaced with "...".
// If maxWidth is not positive, [MaxQuoteWidth] is used.
func Quote(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = MaxQuoteWidth
	}

	quote := byte('\'')
	if strings.IndexByte(text, '\'') >= 0 && strings.IndexByte(text, '"') < 0 {
		quote = '"'
	}

	out := new(strings.Builder)
	out.WriteByte(quote)

	var column int
	state := -1
	for rest := text; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		chunk := escape(cluster, quote)
		width := uniseg.StringWidth(chunk)
		if column+width > maxWidth {
			out.WriteString("...")
			break
		}

		column += width
		out.WriteString(chunk)
	}

	out.WriteByte(quote)
	return out.String()
}

// escape escapes a single grapheme cluster.
func escape(cluster string, quote byte) string {
	var out strings.Builder
	for i := 0; i < len(cluster); {
		r, n := utf8.DecodeRuneInString(cluster[i:])
		switch {
		case r == rune(quote) || r == '\\':
			out.WriteByte('\\')
			out.WriteRune(r)
		case r == '\n':
			out.WriteString(`\n`)
		case r == '\r':
			out.WriteString(`\r`)
		case r == '\t':
			out.WriteString(`\t`)
		case r == utf8.RuneError && n <= 1:
			fmt.Fprintf(&out, `\x%02x`, cluster[i])
		case NonPrint(r) && r <= 0xff:
			fmt.Fprintf(&out, `\x%02x`, r)
		case NonPrint(r) && r <= 0xffff:
			fmt.Fprintf(&out, `\u%04x`, r)
		case NonPrint(r):
			fmt.Fprintf(&out, `\U%08x`, r)
		default:
			out.WriteString(cluster[i : i+n])
		}
		i += n
	}
	return out.String()
}
