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
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

// sentinel stands in for 16-bit units that are not a scalar value on their own
// (lone surrogate halves). It is not alphanumeric, so such units are copied
// through and never join a word.
const sentinel = ';'

// unitCodec describes how characters are laid out in a buffer
type unitCodec interface {
	// width is the number of bytes in one unit
	width() int
	// decode reads the unit at the start of b; len(b) >= width()
	decode(b []byte) rune
	// encode appends s to dst in the codec's layout
	encode(dst []byte, s string) []byte
}

type asciiCodec struct{}

func (asciiCodec) width() int { return 1 }

// bytes >= 0x80 decode to non-ASCII runes and therefore never start a word
func (asciiCodec) decode(b []byte) rune { return rune(b[0]) }

func (asciiCodec) encode(dst []byte, s string) []byte { return append(dst, s...) }

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type utf16Codec struct {
	order byteOrder
}

var (
	utf16LECodec = utf16Codec{order: binary.LittleEndian}
	utf16BECodec = utf16Codec{order: binary.BigEndian}
)

func (utf16Codec) width() int { return 2 }

func (c utf16Codec) decode(b []byte) rune {
	r := rune(c.order.Uint16(b))
	if utf16.IsSurrogate(r) {
		return sentinel
	}
	return r
}

func (c utf16Codec) encode(dst []byte, s string) []byte {
	for _, u := range utf16.Encode([]rune(s)) {
		dst = c.order.AppendUint16(dst, u)
	}
	return dst
}

// decodeString decodes b as text, pairing surrogates. Lone surrogates and a
// dangling odd byte become U+FFFD.
func (c utf16Codec) decodeString(b []byte) string {
	units := make([]uint16, 0, len(b)/2)
	for ; len(b) >= 2; b = b[2:] {
		units = append(units, c.order.Uint16(b))
	}
	runes := utf16.Decode(units)
	if len(b) == 1 {
		runes = append(runes, utf8.RuneError)
	}
	return string(runes)
}
