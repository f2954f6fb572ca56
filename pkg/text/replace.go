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
	"gitlab.com/tozd/go/errors"
)

// ReplaceASCII swaps dictionary words in a buffer holding one character per
// byte. Bytes outside ASCII never belong to a word and are copied unchanged.
func ReplaceASCII(d Dictionary, data []byte) (uint64, []byte) {
	return scan(d, data, asciiCodec{})
}

// ReplaceUTF16LE swaps dictionary words in little-endian UTF-16 data.
// Replacements are written back as little-endian code units.
func ReplaceUTF16LE(d Dictionary, data []byte) (uint64, []byte) {
	return scan(d, data, utf16LECodec)
}

// ReplaceUTF16BE swaps dictionary words in big-endian UTF-16 data.
// Replacements are written back as big-endian code units.
func ReplaceUTF16BE(d Dictionary, data []byte) (uint64, []byte) {
	return scan(d, data, utf16BECodec)
}

// ReplaceText swaps dictionary words in already decoded text. It follows the
// ASCII rules: only ASCII letters, digits and underscores form words, every
// other character is kept as is.
func ReplaceText(d Dictionary, content string) (uint64, string) {
	count, out := scan(d, []byte(content), asciiCodec{})
	return count, string(out)
}

// 🎯 Replace dispatches to the replacer for enc. Auto is resolved from the
// byte order mark of data.
func Replace(d Dictionary, enc Encoding, data []byte) (uint64, []byte, error) {
	switch enc.resolve(data) {
	case ASCII:
		count, out := ReplaceASCII(d, data)
		return count, out, nil
	case UTF16LE:
		count, out := ReplaceUTF16LE(d, data)
		return count, out, nil
	case UTF16BE:
		count, out := ReplaceUTF16BE(d, data)
		return count, out, nil
	default:
		return 0, nil, errors.Errorf("unsupported encoding %s", enc)
	}
}
