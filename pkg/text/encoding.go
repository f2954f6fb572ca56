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
	"bytes"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔤 Encoding is the layout of text inside a byte buffer
type Encoding int

const (
	// Auto picks UTF16LE or UTF16BE from a byte order mark and falls back to ASCII.
	Auto Encoding = iota
	// ASCII treats every byte as one character.
	ASCII
	// UTF16LE reads little-endian 16-bit code units.
	UTF16LE
	// UTF16BE reads big-endian 16-bit code units.
	UTF16BE
)

var (
	bomLE = []byte{0xFF, 0xFE}
	bomBE = []byte{0xFE, 0xFF}
)

// String returns the canonical name of the encoding
func (e Encoding) String() string {
	switch e {
	case Auto:
		return "auto"
	case ASCII:
		return "ascii"
	case UTF16LE:
		return "utf16le"
	case UTF16BE:
		return "utf16be"
	default:
		return "unknown"
	}
}

// 🔍 ParseEncoding parses an encoding name. Matching is case insensitive and
// accepts the common dashed spellings.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "ascii", "latin1", "utf8", "utf-8":
		return ASCII, nil
	case "utf16le", "utf-16le":
		return UTF16LE, nil
	case "utf16be", "utf-16be":
		return UTF16BE, nil
	default:
		return Auto, errors.Errorf("unknown encoding %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler
func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Encoding) UnmarshalText(data []byte) error {
	parsed, err := ParseEncoding(string(data))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// DetectEncoding sniffs a UTF-16 byte order mark. Buffers without one are ASCII.
func DetectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomLE):
		return UTF16LE
	case bytes.HasPrefix(data, bomBE):
		return UTF16BE
	default:
		return ASCII
	}
}

// resolve turns Auto into a concrete encoding for data
func (e Encoding) resolve(data []byte) Encoding {
	if e == Auto {
		return DetectEncoding(data)
	}
	return e
}
