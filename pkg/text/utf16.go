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
	"golang.org/x/text/encoding/unicode"
)

var (
	utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// EncodeUTF16LE encodes s as little-endian UTF-16 without a byte order mark.
func EncodeUTF16LE(s string) []byte {
	return transform(utf16le.NewEncoder(), []byte(s), utf16LECodec.encodeBytes)
}

// EncodeUTF16BE encodes s as big-endian UTF-16 without a byte order mark.
func EncodeUTF16BE(s string) []byte {
	return transform(utf16be.NewEncoder(), []byte(s), utf16BECodec.encodeBytes)
}

// DecodeUTF16LE decodes little-endian UTF-16 for display. Invalid units and a
// dangling odd byte become U+FFFD.
func DecodeUTF16LE(data []byte) string {
	return string(transform(utf16le.NewDecoder(), data, utf16LECodec.decodeBytes))
}

// DecodeUTF16BE decodes big-endian UTF-16 for display.
func DecodeUTF16BE(data []byte) string {
	return string(transform(utf16be.NewDecoder(), data, utf16BECodec.decodeBytes))
}

// Decode renders data as a string according to enc, for diffs and logs.
func Decode(enc Encoding, data []byte) string {
	switch enc.resolve(data) {
	case UTF16LE:
		return DecodeUTF16LE(data)
	case UTF16BE:
		return DecodeUTF16BE(data)
	default:
		return string(data)
	}
}

type bytesTransformer interface {
	Bytes(b []byte) ([]byte, error)
}

// transform runs t over data. The x/text UTF-16 transformers substitute
// U+FFFD for invalid input and grow their own buffers, so they do not fail;
// fallback produces the same output from the scanner codec if one ever does.
func transform(t bytesTransformer, data []byte, fallback func([]byte) []byte) []byte {
	out, err := t.Bytes(data)
	if err != nil {
		return fallback(data)
	}
	return out
}

func (c utf16Codec) encodeBytes(b []byte) []byte {
	return c.encode(nil, string(b))
}

func (c utf16Codec) decodeBytes(b []byte) []byte {
	return []byte(c.decodeString(b))
}
