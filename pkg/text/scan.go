// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"github.com/walteh/wordswap/pkg/casematch"
)

// scan walks src unit by unit and swaps every word found in d.
//
// A word starts at an ASCII alphanumeric unit and runs over alphanumeric and
// underscore units. Any other unit has its first byte copied and the cursor
// moves one byte, which lets odd-length binary runs fall back into step with
// the text after them. Bytes left over when less than a unit remains are
// copied as is.
func scan(d Dictionary, src []byte, c unitCodec) (uint64, []byte) {
	width := c.width()
	out := make([]byte, 0, len(src))
	word := make([]byte, 0, 32)

	var count uint64
	cursor := 0
	for cursor+width <= len(src) {
		if !isAlnum(c.decode(src[cursor:])) {
			out = append(out, src[cursor])
			cursor++
			continue
		}

		start := cursor
		word = word[:0]
		for cursor+width <= len(src) {
			r := c.decode(src[cursor:])
			if !isAlnum(r) && r != '_' {
				break
			}
			word = append(word, byte(r))
			cursor += width
		}

		value, ok := d.Lookup(string(word))
		if !ok {
			out = append(out, src[start:cursor]...)
			continue
		}
		count++
		out = c.encode(out, casematch.Match(string(word), value))
	}

	return count, append(out, src[cursor:]...)
}

func isAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
